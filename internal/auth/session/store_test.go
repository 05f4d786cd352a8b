package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
	"github.com/avifenesh/expense-track-sub001/internal/auth/session"
)

func TestStore_StartsUninitialized(t *testing.T) {
	s := session.NewStore()

	current := s.Session()
	assert.Equal(t, domain.StatusUninitialized, current.Status)
	assert.True(t, current.Valid())
}

func TestStore_SetReplacesWholeState(t *testing.T) {
	s := session.NewStore()

	user := domain.User{Email: "user@example.com"}
	s.Set(domain.AuthenticatedSession(user, "a1", "r1"))

	current := s.Session()
	require.NotNil(t, current.User)
	assert.Equal(t, "user@example.com", current.User.Email)
	assert.Equal(t, "a1", current.AccessToken)

	s.Set(domain.UnauthenticatedSession())
	current = s.Session()
	assert.Nil(t, current.User)
	assert.Empty(t, current.AccessToken)
	assert.Empty(t, current.RefreshToken)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := session.NewStore()
	s.Set(domain.AuthenticatedSession(domain.User{Email: "user@example.com"}, "a1", "r1"))

	snap := s.Session()
	snap.User.Email = "tampered@example.com"

	assert.Equal(t, "user@example.com", s.Session().User.Email)
}

func TestStore_SubscribeDeliversLatest(t *testing.T) {
	s := session.NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	// Two rapid transitions: a slow observer keeps only the newest one.
	s.Set(domain.InitializingSession())
	s.Set(domain.UnauthenticatedSession())

	got := <-ch
	assert.Equal(t, domain.StatusUnauthenticated, got.Status)
}

func TestStore_BiometricState(t *testing.T) {
	s := session.NewStore()

	capability := domain.BiometricCapability{IsAvailable: true, BiometricType: domain.BiometricFaceID, IsEnrolled: true}
	s.SetBiometric(capability, true)

	gotCap, enabled := s.Biometric()
	assert.Equal(t, capability, gotCap)
	assert.True(t, enabled)

	s.SetBiometricEnabled(false)
	gotCap, enabled = s.Biometric()
	assert.Equal(t, capability, gotCap)
	assert.False(t, enabled)
}
