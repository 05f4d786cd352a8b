// Package biometric normalizes the platform biometric surface into the small
// contract the lifecycle coordinator branches on, and owns the
// biometric-scoped credential namespace (binding + enabled flag).
package biometric

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
	autherror "github.com/avifenesh/expense-track-sub001/internal/errors"
)

const (
	keyBindingRefreshToken = "biometric.refresh_token"
	keyBindingEmail        = "biometric.email"
	keyEnabled             = "biometric.enabled"
)

// PromptError is the failure shape platform adapters return from
// Authenticate. Code carries the vendor-specific error identifier.
type PromptError struct {
	Code    string
	Message string
}

func (e *PromptError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// promptFailures maps vendor error codes onto the closed result set. Both the
// iOS LocalAuthentication and Android BiometricPrompt vocabularies are
// covered; anything else degrades to PromptUnknown.
var promptFailures = map[string]domain.PromptFailure{
	// iOS LAError
	"userCancel":          domain.PromptCancelled,
	"systemCancel":        domain.PromptSystemCancelled,
	"appCancel":           domain.PromptSystemCancelled,
	"userFallback":        domain.PromptFallback,
	"biometryNotEnrolled": domain.PromptNotEnrolled,
	"passcodeNotSet":      domain.PromptNotEnrolled,
	"biometryLockout":     domain.PromptLockout,

	// Android BiometricPrompt
	"ERROR_USER_CANCELED":     domain.PromptCancelled,
	"ERROR_CANCELED":          domain.PromptSystemCancelled,
	"ERROR_TIMEOUT":           domain.PromptSystemCancelled,
	"ERROR_NEGATIVE_BUTTON":   domain.PromptFallback,
	"ERROR_NO_BIOMETRICS":     domain.PromptNotEnrolled,
	"ERROR_LOCKOUT":           domain.PromptLockout,
	"ERROR_LOCKOUT_PERMANENT": domain.PromptPermanentLockout,
}

// Gate implements domain.BiometricGate over a platform device and the secure
// key-value store.
type Gate struct {
	device domain.BiometricDevice
	kv     domain.SecureStore
	log    *zap.Logger
}

func NewGate(device domain.BiometricDevice, kv domain.SecureStore, log *zap.Logger) *Gate {
	return &Gate{device: device, kv: kv, log: log}
}

// Capability queries hardware, supported methods and enrollment. It never
// fails: any platform error degrades to an unavailable capability.
func (g *Gate) Capability(ctx context.Context) domain.BiometricCapability {
	none := domain.BiometricCapability{BiometricType: domain.BiometricNone}

	hasHardware, err := g.device.HasHardware(ctx)
	if err != nil || !hasHardware {
		if err != nil {
			g.log.Warn("biometric hardware query failed", zap.Error(err))
		}
		return none
	}

	types, err := g.device.SupportedTypes(ctx)
	if err != nil {
		g.log.Warn("biometric type query failed", zap.Error(err))
		return none
	}
	preferred := pickType(types)
	if preferred == domain.BiometricNone {
		return none
	}

	enrolled, err := g.device.IsEnrolled(ctx)
	if err != nil {
		g.log.Warn("biometric enrollment query failed", zap.Error(err))
		return none
	}

	return domain.BiometricCapability{
		IsAvailable:   enrolled,
		BiometricType: preferred,
		IsEnrolled:    enrolled,
	}
}

// Prompt shows the platform dialog and maps every failure into the closed
// result set.
func (g *Gate) Prompt(ctx context.Context, reason string) domain.PromptResult {
	err := g.device.Authenticate(ctx, reason)
	if err == nil {
		return domain.PromptResult{Success: true}
	}

	var pe *PromptError
	if errors.As(err, &pe) {
		if mapped, ok := promptFailures[pe.Code]; ok {
			return domain.PromptResult{Reason: mapped}
		}
		g.log.Warn("unrecognized biometric error code", zap.String("code", pe.Code))
		return domain.PromptResult{Reason: domain.PromptUnknown}
	}

	g.log.Warn("biometric prompt failed", zap.Error(err))
	return domain.PromptResult{Reason: domain.PromptUnknown}
}

// ReadBinding returns the persisted binding, or nil when either half is
// missing. A partial write is treated as no binding at all.
func (g *Gate) ReadBinding(ctx context.Context) (*domain.BiometricBinding, error) {
	refresh, err := g.kv.Get(ctx, keyBindingRefreshToken)
	if errors.Is(err, autherror.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	email, err := g.kv.Get(ctx, keyBindingEmail)
	if errors.Is(err, autherror.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if refresh == "" || email == "" {
		return nil, nil
	}
	return &domain.BiometricBinding{RefreshToken: refresh, Email: email}, nil
}

func (g *Gate) WriteBinding(ctx context.Context, refreshToken, email string) error {
	if err := g.kv.Set(ctx, keyBindingRefreshToken, refreshToken); err != nil {
		return err
	}
	return g.kv.Set(ctx, keyBindingEmail, email)
}

func (g *Gate) ClearBinding(ctx context.Context) error {
	var firstErr error
	for _, key := range []string{keyBindingRefreshToken, keyBindingEmail} {
		if err := g.kv.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (g *Gate) IsEnabled(ctx context.Context) bool {
	v, err := g.kv.Get(ctx, keyEnabled)
	if err != nil {
		return false
	}
	return v == "true"
}

func (g *Gate) SetEnabled(ctx context.Context, enabled bool) error {
	if enabled {
		return g.kv.Set(ctx, keyEnabled, "true")
	}
	return g.kv.Set(ctx, keyEnabled, "false")
}

// pickType chooses the strongest reported method.
func pickType(types []domain.BiometricType) domain.BiometricType {
	best := domain.BiometricNone
	for _, t := range types {
		switch t {
		case domain.BiometricFaceID:
			return domain.BiometricFaceID
		case domain.BiometricFingerprint:
			best = domain.BiometricFingerprint
		case domain.BiometricIris:
			if best == domain.BiometricNone {
				best = domain.BiometricIris
			}
		}
	}
	return best
}
