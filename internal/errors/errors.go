package errors

import (
	"errors"
	"fmt"

	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
)

// Stable error codes callers branch on. UI copy is chosen by code, never by
// message text.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRateLimited        = "RATE_LIMITED"
	CodeLoginFailed        = "LOGIN_FAILED"
	CodeRegistrationFailed = "REGISTRATION_FAILED"
	CodeNoRefreshToken     = "NO_REFRESH_TOKEN"
	CodeBiometricFailed    = "BIOMETRIC_FAILED"
	CodeNoCredentials      = "NO_CREDENTIALS"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeUnknown            = "UNKNOWN"
)

// ErrKeyNotFound is returned by a SecureStore for absent keys.
var ErrKeyNotFound = errors.New("secure store: key not found")

// Error is the single error shape surfaced by the auth subsystem. Code is
// always one of the constants above; PromptReason is set only for
// CodeBiometricFailed.
type Error struct {
	Code         string
	Message      string
	HTTPStatus   int
	PromptReason domain.PromptFailure
	Err          error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is match on code, so sentinel comparisons work across
// wrapped instances.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// Sentinels for the fixed failure kinds.
var (
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "invalid credentials"}
	ErrRateLimited        = &Error{Code: CodeRateLimited, Message: "too many attempts"}
	ErrNoRefreshToken     = &Error{Code: CodeNoRefreshToken, Message: "no refresh token in session"}
	ErrNoCredentials      = &Error{Code: CodeNoCredentials, Message: "no stored biometric credentials"}
	ErrSessionExpired     = &Error{Code: CodeSessionExpired, Message: "session expired"}
	ErrNotAuthenticated   = &Error{Code: CodeNotAuthenticated, Message: "not authenticated"}
)

// New builds an Error with an explicit code.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a stable code to an underlying failure.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Biometric builds a CodeBiometricFailed error carrying the gate's
// normalized prompt reason.
func Biometric(reason domain.PromptFailure) *Error {
	return &Error{
		Code:         CodeBiometricFailed,
		Message:      "biometric authentication failed: " + reason.String(),
		PromptReason: reason,
	}
}

// CodeOf extracts the stable code from any error, falling back to
// CodeUnknown for foreign errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
