package biometric

import (
	"context"

	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
)

// UnsupportedDevice reports no biometric hardware. Headless and desktop
// builds inject it so the gate degrades cleanly.
type UnsupportedDevice struct{}

func (UnsupportedDevice) HasHardware(context.Context) (bool, error) { return false, nil }

func (UnsupportedDevice) IsEnrolled(context.Context) (bool, error) { return false, nil }

func (UnsupportedDevice) SupportedTypes(context.Context) ([]domain.BiometricType, error) {
	return nil, nil
}

func (UnsupportedDevice) Authenticate(context.Context, string) error {
	return &PromptError{Code: "ERROR_HW_NOT_PRESENT", Message: "no biometric hardware"}
}
