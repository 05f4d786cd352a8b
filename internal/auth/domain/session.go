package domain

// Status is the lifecycle phase of the client session.
type Status int

const (
	StatusUninitialized Status = iota
	StatusInitializing
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the signed-in account as the client knows it. ID stays empty until
// a profile fetch fills it in; Email is the stable key used for biometric
// binding.
type User struct {
	ID                     string
	Email                  string
	DisplayName            string
	HasCompletedOnboarding bool
}

// UserPatch is a partial update applied to the current user. Nil fields are
// left untouched.
type UserPatch struct {
	ID                     *string
	DisplayName            *string
	HasCompletedOnboarding *bool
}

// Session is the single in-memory auth state. Invariant: Status is
// StatusAuthenticated iff User != nil and AccessToken != "". Build sessions
// through the constructors below so the invariant holds everywhere.
type Session struct {
	Status       Status
	User         *User
	AccessToken  string
	RefreshToken string
}

func UninitializedSession() Session {
	return Session{Status: StatusUninitialized}
}

func InitializingSession() Session {
	return Session{Status: StatusInitializing}
}

func UnauthenticatedSession() Session {
	return Session{Status: StatusUnauthenticated}
}

func AuthenticatedSession(user User, accessToken, refreshToken string) Session {
	return Session{
		Status:       StatusAuthenticated,
		User:         &user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

// Valid reports whether the session satisfies the authenticated-state
// invariant.
func (s Session) Valid() bool {
	if s.Status == StatusAuthenticated {
		return s.User != nil && s.AccessToken != ""
	}
	return s.User == nil && s.AccessToken == ""
}

// Clone returns a deep copy safe to hand to observers.
func (s Session) Clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

// BiometricType enumerates the methods the device can report.
type BiometricType int

const (
	BiometricNone BiometricType = iota
	BiometricFaceID
	BiometricFingerprint
	BiometricIris
)

func (t BiometricType) String() string {
	switch t {
	case BiometricFaceID:
		return "face_id"
	case BiometricFingerprint:
		return "fingerprint"
	case BiometricIris:
		return "iris"
	default:
		return "none"
	}
}

// BiometricCapability is derived once per app start. IsAvailable is true only
// when hardware exists, a supported method is reported and enrollment is
// confirmed.
type BiometricCapability struct {
	IsAvailable   bool
	BiometricType BiometricType
	IsEnrolled    bool
}

// BiometricBinding links a refresh token and email to the device biometric,
// stored apart from the main token cache.
type BiometricBinding struct {
	RefreshToken string
	Email        string
}

// StoredCredentials is the persisted snapshot written on every successful
// login or refresh so the app can attempt silent restoration on relaunch.
// Absent fields read back as zero values.
type StoredCredentials struct {
	AccessToken            string
	RefreshToken           string
	Email                  string
	HasCompletedOnboarding bool
}

// PromptFailure is the closed set of biometric prompt outcomes the
// coordinator branches on. Platform-specific codes are normalized into these
// by the gate; anything unrecognized becomes PromptUnknown.
type PromptFailure int

const (
	PromptCancelled PromptFailure = iota
	PromptSystemCancelled
	PromptFallback
	PromptNotEnrolled
	PromptLockout
	PromptPermanentLockout
	PromptUnknown
)

func (f PromptFailure) String() string {
	switch f {
	case PromptCancelled:
		return "cancelled"
	case PromptSystemCancelled:
		return "system_cancelled"
	case PromptFallback:
		return "fallback"
	case PromptNotEnrolled:
		return "not_enrolled"
	case PromptLockout:
		return "lockout"
	case PromptPermanentLockout:
		return "permanent_lockout"
	default:
		return "unknown"
	}
}

// PromptResult is the outcome of one biometric prompt. Reason is meaningful
// only when Success is false.
type PromptResult struct {
	Success bool
	Reason  PromptFailure
}
