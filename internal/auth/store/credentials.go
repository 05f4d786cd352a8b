// Package store implements credential persistence over the platform secure
// key-value capability.
package store

import (
	"context"
	"errors"

	"github.com/avifenesh/expense-track-sub001/internal/auth/domain"
	autherror "github.com/avifenesh/expense-track-sub001/internal/errors"
)

const (
	keyAccessToken  = "auth.access_token"
	keyRefreshToken = "auth.refresh_token"
	keyEmail        = "auth.email"
	keyOnboarded    = "auth.has_completed_onboarding"
)

// Credentials adapts a SecureStore into the CredentialStore contract used by
// the lifecycle coordinator. Absent keys read back as zero values.
type Credentials struct {
	kv domain.SecureStore
}

func NewCredentials(kv domain.SecureStore) *Credentials {
	return &Credentials{kv: kv}
}

func (c *Credentials) GetAll(ctx context.Context) (domain.StoredCredentials, error) {
	var out domain.StoredCredentials

	access, err := c.get(ctx, keyAccessToken)
	if err != nil {
		return domain.StoredCredentials{}, err
	}
	refresh, err := c.get(ctx, keyRefreshToken)
	if err != nil {
		return domain.StoredCredentials{}, err
	}
	email, err := c.get(ctx, keyEmail)
	if err != nil {
		return domain.StoredCredentials{}, err
	}
	onboarded, err := c.get(ctx, keyOnboarded)
	if err != nil {
		return domain.StoredCredentials{}, err
	}

	out.AccessToken = access
	out.RefreshToken = refresh
	out.Email = email
	out.HasCompletedOnboarding = onboarded == "true"
	return out, nil
}

func (c *Credentials) SetAll(ctx context.Context, accessToken, refreshToken, email string, hasCompletedOnboarding bool) error {
	if err := c.kv.Set(ctx, keyAccessToken, accessToken); err != nil {
		return err
	}
	if err := c.kv.Set(ctx, keyRefreshToken, refreshToken); err != nil {
		return err
	}
	if err := c.kv.Set(ctx, keyEmail, email); err != nil {
		return err
	}
	return c.kv.Set(ctx, keyOnboarded, boolString(hasCompletedOnboarding))
}

func (c *Credentials) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := c.kv.Set(ctx, keyAccessToken, accessToken); err != nil {
		return err
	}
	return c.kv.Set(ctx, keyRefreshToken, refreshToken)
}

func (c *Credentials) Clear(ctx context.Context) error {
	var firstErr error
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyEmail, keyOnboarded} {
		if err := c.kv.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Credentials) get(ctx context.Context, key string) (string, error) {
	v, err := c.kv.Get(ctx, key)
	if errors.Is(err, autherror.ErrKeyNotFound) {
		return "", nil
	}
	return v, err
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
