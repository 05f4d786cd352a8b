package domain

//go:generate mockgen -destination=../../mocks/mock_auth_api.go -package=mocks github.com/avifenesh/expense-track-sub001/internal/auth/domain AuthAPI
//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/avifenesh/expense-track-sub001/internal/auth/domain CredentialStore
//go:generate mockgen -destination=../../mocks/mock_biometric_gate.go -package=mocks github.com/avifenesh/expense-track-sub001/internal/auth/domain BiometricGate
//go:generate mockgen -destination=../../mocks/mock_biometric_device.go -package=mocks github.com/avifenesh/expense-track-sub001/internal/auth/domain BiometricDevice

import (
	"context"

	"github.com/avifenesh/expense-track-sub001/internal/auth/dto"
)

// AuthAPI is the remote authentication service as seen from the device.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	Register(ctx context.Context, email, password, displayName string) (*dto.RegisterResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// CredentialStore persists the token/email snapshot used for silent session
// restoration. Any call may fail when the platform store is unavailable; the
// coordinator must tolerate that without corrupting in-memory state.
type CredentialStore interface {
	GetAll(ctx context.Context) (StoredCredentials, error)
	SetAll(ctx context.Context, accessToken, refreshToken, email string, hasCompletedOnboarding bool) error
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
}

// BiometricGate wraps the platform biometric capability and the
// biometric-scoped credential namespace behind a stable contract.
type BiometricGate interface {
	// Capability never fails; platform query errors degrade to unavailable.
	Capability(ctx context.Context) BiometricCapability
	Prompt(ctx context.Context, reason string) PromptResult
	// ReadBinding returns nil when either half of the binding is missing.
	ReadBinding(ctx context.Context) (*BiometricBinding, error)
	WriteBinding(ctx context.Context, refreshToken, email string) error
	ClearBinding(ctx context.Context) error
	IsEnabled(ctx context.Context) bool
	SetEnabled(ctx context.Context, enabled bool) error
}

// SecureStore is the platform confidential key-value capability (keychain,
// keystore, or an encrypted file in development). Get returns ErrKeyNotFound
// for absent keys.
type SecureStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// BiometricDevice is the raw platform biometric surface. Authenticate returns
// nil on success or an error whose vendor code the gate normalizes.
type BiometricDevice interface {
	HasHardware(ctx context.Context) (bool, error)
	IsEnrolled(ctx context.Context) (bool, error)
	SupportedTypes(ctx context.Context) ([]BiometricType, error)
	Authenticate(ctx context.Context, reason string) error
}
