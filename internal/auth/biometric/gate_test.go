package biometric_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avifenesh/expense-track-sub001/internal/auth/biometric"
	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
	"github.com/avifenesh/expense-track-sub001/internal/auth/store"
	"github.com/avifenesh/expense-track-sub001/internal/mocks"
)

func TestGate_Capability(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(device *mocks.MockBiometricDevice)
		expect domain.BiometricCapability
	}{
		{
			name: "available and enrolled",
			setup: func(device *mocks.MockBiometricDevice) {
				device.EXPECT().HasHardware(gomock.Any()).Return(true, nil)
				device.EXPECT().SupportedTypes(gomock.Any()).Return([]domain.BiometricType{domain.BiometricFaceID}, nil)
				device.EXPECT().IsEnrolled(gomock.Any()).Return(true, nil)
			},
			expect: domain.BiometricCapability{IsAvailable: true, BiometricType: domain.BiometricFaceID, IsEnrolled: true},
		},
		{
			name: "hardware present but not enrolled",
			setup: func(device *mocks.MockBiometricDevice) {
				device.EXPECT().HasHardware(gomock.Any()).Return(true, nil)
				device.EXPECT().SupportedTypes(gomock.Any()).Return([]domain.BiometricType{domain.BiometricFingerprint}, nil)
				device.EXPECT().IsEnrolled(gomock.Any()).Return(false, nil)
			},
			expect: domain.BiometricCapability{BiometricType: domain.BiometricNone},
		},
		{
			name: "no hardware",
			setup: func(device *mocks.MockBiometricDevice) {
				device.EXPECT().HasHardware(gomock.Any()).Return(false, nil)
			},
			expect: domain.BiometricCapability{BiometricType: domain.BiometricNone},
		},
		{
			name: "query failure degrades to unavailable",
			setup: func(device *mocks.MockBiometricDevice) {
				device.EXPECT().HasHardware(gomock.Any()).Return(false, errors.New("binder died"))
			},
			expect: domain.BiometricCapability{BiometricType: domain.BiometricNone},
		},
		{
			name: "no supported method",
			setup: func(device *mocks.MockBiometricDevice) {
				device.EXPECT().HasHardware(gomock.Any()).Return(true, nil)
				device.EXPECT().SupportedTypes(gomock.Any()).Return(nil, nil)
			},
			expect: domain.BiometricCapability{BiometricType: domain.BiometricNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			device := mocks.NewMockBiometricDevice(ctrl)
			tt.setup(device)

			gate := biometric.NewGate(device, store.NewMemory(), zap.NewNop())
			got := gate.Capability(context.Background())

			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestGate_PromptMapsPlatformCodes(t *testing.T) {
	tests := []struct {
		code   string
		expect domain.PromptFailure
	}{
		{"userCancel", domain.PromptCancelled},
		{"systemCancel", domain.PromptSystemCancelled},
		{"appCancel", domain.PromptSystemCancelled},
		{"userFallback", domain.PromptFallback},
		{"biometryNotEnrolled", domain.PromptNotEnrolled},
		{"passcodeNotSet", domain.PromptNotEnrolled},
		{"biometryLockout", domain.PromptLockout},
		{"ERROR_USER_CANCELED", domain.PromptCancelled},
		{"ERROR_CANCELED", domain.PromptSystemCancelled},
		{"ERROR_TIMEOUT", domain.PromptSystemCancelled},
		{"ERROR_NEGATIVE_BUTTON", domain.PromptFallback},
		{"ERROR_NO_BIOMETRICS", domain.PromptNotEnrolled},
		{"ERROR_LOCKOUT", domain.PromptLockout},
		{"ERROR_LOCKOUT_PERMANENT", domain.PromptPermanentLockout},
		{"SOME_FUTURE_VENDOR_CODE", domain.PromptUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			device := mocks.NewMockBiometricDevice(ctrl)
			device.EXPECT().Authenticate(gomock.Any(), "unlock").
				Return(&biometric.PromptError{Code: tt.code})

			gate := biometric.NewGate(device, store.NewMemory(), zap.NewNop())
			result := gate.Prompt(context.Background(), "unlock")

			assert.False(t, result.Success)
			assert.Equal(t, tt.expect, result.Reason)
		})
	}
}

func TestGate_PromptSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	device := mocks.NewMockBiometricDevice(ctrl)
	device.EXPECT().Authenticate(gomock.Any(), "sign in").Return(nil)

	gate := biometric.NewGate(device, store.NewMemory(), zap.NewNop())
	result := gate.Prompt(context.Background(), "sign in")

	assert.True(t, result.Success)
}

func TestGate_PromptForeignErrorIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	device := mocks.NewMockBiometricDevice(ctrl)
	device.EXPECT().Authenticate(gomock.Any(), "unlock").Return(errors.New("ipc failure"))

	gate := biometric.NewGate(device, store.NewMemory(), zap.NewNop())
	result := gate.Prompt(context.Background(), "unlock")

	assert.False(t, result.Success)
	assert.Equal(t, domain.PromptUnknown, result.Reason)
}

func TestGate_Binding(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		gate := biometric.NewGate(biometric.UnsupportedDevice{}, store.NewMemory(), zap.NewNop())

		require.NoError(t, gate.WriteBinding(ctx, "r1", "user@example.com"))
		binding, err := gate.ReadBinding(ctx)
		require.NoError(t, err)
		require.NotNil(t, binding)
		assert.Equal(t, "r1", binding.RefreshToken)
		assert.Equal(t, "user@example.com", binding.Email)

		require.NoError(t, gate.ClearBinding(ctx))
		binding, err = gate.ReadBinding(ctx)
		require.NoError(t, err)
		assert.Nil(t, binding)
	})

	t.Run("absent reads as nil", func(t *testing.T) {
		gate := biometric.NewGate(biometric.UnsupportedDevice{}, store.NewMemory(), zap.NewNop())

		binding, err := gate.ReadBinding(ctx)
		require.NoError(t, err)
		assert.Nil(t, binding)
	})

	t.Run("partial write reads as nil", func(t *testing.T) {
		kv := store.NewMemory()
		gate := biometric.NewGate(biometric.UnsupportedDevice{}, kv, zap.NewNop())

		// Only one half of the binding present.
		require.NoError(t, kv.Set(ctx, "biometric.refresh_token", "r1"))

		binding, err := gate.ReadBinding(ctx)
		require.NoError(t, err)
		assert.Nil(t, binding)
	})
}

func TestGate_EnabledFlag(t *testing.T) {
	ctx := context.Background()
	gate := biometric.NewGate(biometric.UnsupportedDevice{}, store.NewMemory(), zap.NewNop())

	assert.False(t, gate.IsEnabled(ctx))

	require.NoError(t, gate.SetEnabled(ctx, true))
	assert.True(t, gate.IsEnabled(ctx))

	require.NoError(t, gate.SetEnabled(ctx, false))
	assert.False(t, gate.IsEnabled(ctx))
}
