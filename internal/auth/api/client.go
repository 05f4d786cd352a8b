// Package api is the device-side HTTP client for the remote auth service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avifenesh/expense-track-sub001/config"
	"github.com/avifenesh/expense-track-sub001/internal/auth/dto"
	autherror "github.com/avifenesh/expense-track-sub001/internal/errors"
)

// Client talks to the /api/v1 auth endpoints. Every request carries the
// per-install device fingerprint; token values are never logged.
type Client struct {
	baseURL     string
	fingerprint string
	httpClient  *http.Client
	log         *zap.Logger
}

func NewClient(cfg *config.Config, fingerprint string, log *zap.Logger) *Client {
	return &Client{
		baseURL:     cfg.APIBaseURL,
		fingerprint: fingerprint,
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		log:         log,
	}
}

// NewFingerprint mints a device fingerprint for a fresh install. Callers
// persist it so the server can correlate refresh-token rotations per device.
func NewFingerprint() string {
	return uuid.NewString()
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	err := c.post(ctx, "/api/v1/login", dto.LoginInput{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, email, password, displayName string) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	in := dto.RegisterInput{Email: email, Password: password, DisplayName: displayName}
	if err := c.post(ctx, "/api/v1/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	err := c.post(ctx, "/api/v1/refresh", dto.RefreshInput{RefreshToken: refreshToken}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body, err := json.Marshal(dto.LogoutInput{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/session", bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("auth request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("auth request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-Fingerprint", c.fingerprint)
}

// errorFromResponse maps an HTTP failure into the stable taxonomy. The
// server's structured body code wins when present; otherwise the status code
// decides.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body dto.ErrorResponse
	_ = json.Unmarshal(raw, &body)

	switch {
	case body.Code == autherror.CodeRateLimited || resp.StatusCode == http.StatusTooManyRequests:
		return autherror.ErrRateLimited
	case body.Code == autherror.CodeInvalidCredentials || resp.StatusCode == http.StatusUnauthorized:
		return autherror.ErrInvalidCredentials
	}

	message := body.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &autherror.Error{
		Code:       autherror.CodeUnknown,
		Message:    message,
		HTTPStatus: resp.StatusCode,
	}
}
