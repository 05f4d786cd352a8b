package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avifenesh/expense-track-sub001/config"
	"github.com/avifenesh/expense-track-sub001/internal/auth/api"
	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
	"github.com/avifenesh/expense-track-sub001/internal/auth/session"
	autherror "github.com/avifenesh/expense-track-sub001/internal/errors"
)

// SessionService is the token lifecycle coordinator. It owns every session
// transition, is the only caller of the remote auth API and the biometric
// gate, and keeps the credential store consistent with server-side token
// rotation.
type SessionService struct {
	remote   domain.AuthAPI
	creds    domain.CredentialStore
	gate     domain.BiometricGate
	sessions *session.Store
	cfg      *config.Config
	log      *zap.Logger

	initOnce sync.Once
	ready    chan struct{}

	// rotationMu serializes refresh-token exchanges so two callers can never
	// race the same token against server-side rotation.
	rotationMu sync.Mutex

	inflightMu sync.Mutex
	inflight   *refreshCall
}

// refreshCall coalesces concurrent RefreshToken callers onto one network
// attempt; late callers wait for the first result.
type refreshCall struct {
	done chan struct{}
	err  error
}

func NewSessionService(
	remote domain.AuthAPI,
	creds domain.CredentialStore,
	gate domain.BiometricGate,
	sessions *session.Store,
	cfg *config.Config,
	log *zap.Logger,
) *SessionService {
	return &SessionService{
		remote:   remote,
		creds:    creds,
		gate:     gate,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
		ready:    make(chan struct{}),
	}
}

// Sessions exposes the state container the UI observes.
func (s *SessionService) Sessions() *session.Store {
	return s.sessions
}

// Initialize resolves the startup session exactly once and never fails: every
// error path inside resolves to Unauthenticated. Concurrent callers block
// until the first run finishes; user-triggered operations are gated behind it.
func (s *SessionService) Initialize(ctx context.Context) domain.Status {
	s.initOnce.Do(func() {
		defer close(s.ready)
		s.sessions.Set(domain.InitializingSession())
		s.restore(ctx)
	})
	return s.sessions.Session().Status
}

func (s *SessionService) restore(ctx context.Context) {
	capability := s.gate.Capability(ctx)
	enabled := s.gate.IsEnabled(ctx)
	s.sessions.SetBiometric(capability, enabled)

	stored, err := s.creds.GetAll(ctx)
	if err != nil {
		s.log.Warn("stored credentials unavailable", zap.Error(err))
		stored = domain.StoredCredentials{}
	}

	if enabled && capability.IsAvailable {
		s.restoreWithBiometric(ctx)
		return
	}

	// The biometric prompt path was not taken, so the session lock does not
	// apply; attempt silent restoration from the persisted snapshot.
	if stored.RefreshToken != "" {
		s.restoreSilently(ctx, stored, enabled)
		return
	}

	s.sessions.Set(domain.UnauthenticatedSession())
}

func (s *SessionService) restoreWithBiometric(ctx context.Context) {
	result := s.gate.Prompt(ctx, s.cfg.UnlockReason)
	if !result.Success {
		s.log.Info("startup biometric prompt declined", zap.String("reason", result.Reason.String()))
		s.sessions.Set(domain.UnauthenticatedSession())
		return
	}

	binding, err := s.gate.ReadBinding(ctx)
	if err != nil || binding == nil {
		if err != nil {
			s.log.Warn("biometric binding unreadable", zap.Error(err))
		}
		s.sessions.Set(domain.UnauthenticatedSession())
		return
	}

	tokens, err := s.remote.Refresh(ctx, binding.RefreshToken)
	if err != nil {
		s.log.Info("startup biometric refresh rejected", zap.Error(err))
		s.dropBinding(ctx)
		s.sessions.Set(domain.UnauthenticatedSession())
		return
	}

	// A biometric-restored session was necessarily onboarded before.
	user := domain.User{Email: binding.Email, HasCompletedOnboarding: true}
	s.sessions.Set(domain.AuthenticatedSession(user, tokens.AccessToken, tokens.RefreshToken))
	s.persistCredentials(ctx, tokens.AccessToken, tokens.RefreshToken, user.Email, true)
	s.syncBinding(ctx, tokens.RefreshToken, user.Email)
}

func (s *SessionService) restoreSilently(ctx context.Context, stored domain.StoredCredentials, biometricEnabled bool) {
	tokens, err := s.remote.Refresh(ctx, stored.RefreshToken)
	if err != nil {
		s.log.Info("silent restore rejected", zap.Error(err))
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.log.Warn("clearing stale credentials failed", zap.Error(clearErr))
		}
		s.sessions.Set(domain.UnauthenticatedSession())
		return
	}

	user := domain.User{Email: stored.Email, HasCompletedOnboarding: stored.HasCompletedOnboarding}
	s.sessions.Set(domain.AuthenticatedSession(user, tokens.AccessToken, tokens.RefreshToken))
	s.persistCredentials(ctx, tokens.AccessToken, tokens.RefreshToken, user.Email, user.HasCompletedOnboarding)
	if biometricEnabled {
		s.syncBinding(ctx, tokens.RefreshToken, user.Email)
	}
}

// Login exchanges credentials for a token pair and commits an authenticated
// session. Invalid-credential and rate-limit failures pass through typed;
// anything else is wrapped as LOGIN_FAILED.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if err := s.awaitReady(ctx); err != nil {
		return err
	}

	normalized := normalizeEmail(email)
	tokens, err := s.remote.Login(ctx, normalized, password)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) || errors.Is(err, autherror.ErrRateLimited) {
			return err
		}
		return autherror.Wrap(autherror.CodeLoginFailed, "login failed", err)
	}

	user := domain.User{Email: normalized}
	s.sessions.Set(domain.AuthenticatedSession(user, tokens.AccessToken, tokens.RefreshToken))
	s.persistCredentials(ctx, tokens.AccessToken, tokens.RefreshToken, normalized, false)
	return nil
}

// Register creates an account on the remote service. It does not sign the
// user in; the session is untouched.
func (s *SessionService) Register(ctx context.Context, email, password, displayName string) (string, error) {
	if err := s.awaitReady(ctx); err != nil {
		return "", err
	}

	resp, err := s.remote.Register(ctx, normalizeEmail(email), password, displayName)
	if err != nil {
		if errors.Is(err, autherror.ErrRateLimited) || errors.Is(err, autherror.ErrInvalidCredentials) {
			return "", err
		}
		return "", autherror.Wrap(autherror.CodeRegistrationFailed, "registration failed", err)
	}
	return resp.Message, nil
}

// Logout always succeeds from the caller's perspective. The remote call is
// best-effort; the user is never blocked from signing out by a flaky network.
func (s *SessionService) Logout(ctx context.Context) {
	select {
	case <-s.ready:
	case <-ctx.Done():
		return
	}

	current := s.sessions.Session()
	if current.RefreshToken != "" {
		if err := s.remote.Logout(ctx, current.RefreshToken); err != nil {
			s.log.Info("remote logout failed, continuing", zap.Error(err))
		}
	}

	s.dropBinding(ctx)
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Warn("clearing credential store failed", zap.Error(err))
	}
	s.sessions.Set(domain.UnauthenticatedSession())
}

// RefreshToken rotates the session's token pair. Concurrent callers coalesce
// onto a single network attempt and share its outcome.
func (s *SessionService) RefreshToken(ctx context.Context) error {
	if err := s.awaitReady(ctx); err != nil {
		return err
	}

	s.inflightMu.Lock()
	if call := s.inflight; call != nil {
		s.inflightMu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	s.inflight = call
	s.inflightMu.Unlock()

	call.err = s.doRefresh(ctx)

	s.inflightMu.Lock()
	s.inflight = nil
	s.inflightMu.Unlock()
	close(call.done)

	return call.err
}

func (s *SessionService) doRefresh(ctx context.Context) error {
	s.rotationMu.Lock()
	defer s.rotationMu.Unlock()

	current := s.sessions.Session()
	if current.RefreshToken == "" || current.User == nil {
		return autherror.ErrNoRefreshToken
	}

	tokens, err := s.remote.Refresh(ctx, current.RefreshToken)
	if err != nil {
		// The binding is left alone here; only the biometric login path may
		// clear it.
		s.sessions.Set(domain.UnauthenticatedSession())
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.log.Warn("clearing credentials after refresh failure", zap.Error(clearErr))
		}
		return err
	}

	user := *current.User
	s.sessions.Set(domain.AuthenticatedSession(user, tokens.AccessToken, tokens.RefreshToken))
	if err := s.creds.SetTokens(ctx, tokens.AccessToken, tokens.RefreshToken); err != nil {
		s.log.Warn("persisting rotated tokens failed", zap.Error(err))
	}
	s.syncBinding(ctx, tokens.RefreshToken, user.Email)
	return nil
}

// LoginWithBiometric re-authenticates from the device binding. A rejected
// refresh invalidates the binding so the next attempt fails locally with
// NO_CREDENTIALS instead of retrying the network.
func (s *SessionService) LoginWithBiometric(ctx context.Context) error {
	if err := s.awaitReady(ctx); err != nil {
		return err
	}

	result := s.gate.Prompt(ctx, s.cfg.SignInReason)
	if !result.Success {
		return autherror.Biometric(result.Reason)
	}

	binding, err := s.gate.ReadBinding(ctx)
	if err != nil {
		return autherror.Wrap(autherror.CodeNoCredentials, "biometric binding unreadable", err)
	}
	if binding == nil {
		return autherror.ErrNoCredentials
	}

	s.rotationMu.Lock()
	defer s.rotationMu.Unlock()

	tokens, err := s.remote.Refresh(ctx, binding.RefreshToken)
	if err != nil {
		s.dropBinding(ctx)
		s.sessions.Set(domain.UnauthenticatedSession())
		return autherror.Wrap(autherror.CodeSessionExpired, "biometric session expired", err)
	}

	user := domain.User{Email: binding.Email, HasCompletedOnboarding: true}
	s.sessions.Set(domain.AuthenticatedSession(user, tokens.AccessToken, tokens.RefreshToken))
	s.persistCredentials(ctx, tokens.AccessToken, tokens.RefreshToken, user.Email, true)
	s.syncBinding(ctx, tokens.RefreshToken, user.Email)
	return nil
}

// EnableBiometric binds the current refresh token and email to the device
// biometric after an explicit confirmation prompt.
func (s *SessionService) EnableBiometric(ctx context.Context) error {
	if err := s.awaitReady(ctx); err != nil {
		return err
	}

	current := s.sessions.Session()
	if current.Status != domain.StatusAuthenticated || current.RefreshToken == "" ||
		current.User == nil || current.User.Email == "" {
		return autherror.ErrNotAuthenticated
	}

	result := s.gate.Prompt(ctx, s.cfg.EnableReason)
	if !result.Success {
		return autherror.Biometric(result.Reason)
	}

	if err := s.gate.WriteBinding(ctx, current.RefreshToken, current.User.Email); err != nil {
		return autherror.Wrap(autherror.CodeUnknown, "persisting biometric binding failed", err)
	}
	if err := s.gate.SetEnabled(ctx, true); err != nil {
		if clearErr := s.gate.ClearBinding(ctx); clearErr != nil {
			s.log.Warn("rolling back biometric binding failed", zap.Error(clearErr))
		}
		return autherror.Wrap(autherror.CodeUnknown, "enabling biometric failed", err)
	}

	s.sessions.SetBiometricEnabled(true)
	return nil
}

// DisableBiometric removes the binding and flag. It has no auth-state
// precondition and always succeeds.
func (s *SessionService) DisableBiometric(ctx context.Context) {
	s.dropBinding(ctx)
}

// UpdateUser merges a patch into the current user. Tokens and persisted
// storage are never touched; a missing user makes this a no-op.
func (s *SessionService) UpdateUser(patch domain.UserPatch) {
	current := s.sessions.Session()
	if current.User == nil {
		return
	}

	user := *current.User
	if patch.ID != nil {
		user.ID = *patch.ID
	}
	if patch.DisplayName != nil {
		user.DisplayName = *patch.DisplayName
	}
	if patch.HasCompletedOnboarding != nil {
		user.HasCompletedOnboarding = *patch.HasCompletedOnboarding
	}
	s.sessions.Set(domain.AuthenticatedSession(user, current.AccessToken, current.RefreshToken))
}

// NeedsRefresh reports whether the access token expires inside the configured
// refresh window. Unparseable tokens count as expiring.
func (s *SessionService) NeedsRefresh(now time.Time) bool {
	current := s.sessions.Session()
	if current.Status != domain.StatusAuthenticated {
		return false
	}

	expiry, err := api.AccessTokenExpiry(current.AccessToken)
	if err != nil {
		return true
	}
	return !now.Add(s.cfg.RefreshWindow).Before(expiry)
}

func (s *SessionService) awaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dropBinding clears the biometric binding and flag, best-effort.
func (s *SessionService) dropBinding(ctx context.Context) {
	if err := s.gate.ClearBinding(ctx); err != nil {
		s.log.Warn("clearing biometric binding failed", zap.Error(err))
	}
	if err := s.gate.SetEnabled(ctx, false); err != nil {
		s.log.Warn("disabling biometric flag failed", zap.Error(err))
	}
	s.sessions.SetBiometricEnabled(false)
}

// persistCredentials writes the full snapshot, best-effort: storage failure
// never corrupts the committed in-memory session.
func (s *SessionService) persistCredentials(ctx context.Context, accessToken, refreshToken, email string, onboarded bool) {
	if err := s.creds.SetAll(ctx, accessToken, refreshToken, email, onboarded); err != nil {
		s.log.Warn("persisting credentials failed", zap.Error(err))
	}
}

// syncBinding rewrites the biometric binding after a rotation so the bound
// refresh token never goes stale. Skipped when biometric is disabled.
func (s *SessionService) syncBinding(ctx context.Context, refreshToken, email string) {
	if !s.gate.IsEnabled(ctx) {
		return
	}
	if err := s.gate.WriteBinding(ctx, refreshToken, email); err != nil {
		s.log.Error("rotated refresh token not written to biometric binding", zap.Error(err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
