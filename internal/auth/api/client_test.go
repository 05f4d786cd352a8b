package api_test

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/avifenesh/expense-track-sub001/config"
	"github.com/avifenesh/expense-track-sub001/internal/auth/api"
	"github.com/avifenesh/expense-track-sub001/internal/auth/dto"
	autherror "github.com/avifenesh/expense-track-sub001/internal/errors"
)

// fakeAuthServer is an in-process stand-in for the remote auth service with
// real refresh-token rotation: each refresh invalidates the presented token.
type fakeAuthServer struct {
	mu            sync.Mutex
	passwordHash  []byte
	email         string
	refreshTokens map[string]string // refresh token -> email
	registered    []dto.RegisterInput
	fingerprints  []string
}

func newFakeAuthServer(t *testing.T) *fakeAuthServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeAuthServer{
		passwordHash:  hash,
		email:         "user@example.com",
		refreshTokens: make(map[string]string),
	}
}

func (s *fakeAuthServer) issueTokens(email string) dto.TokenResponse {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	access, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("fake-secret"))
	refresh := uuid.NewString()

	s.refreshTokens[refresh] = email
	return dto.TokenResponse{AccessToken: access, RefreshToken: refresh, ExpiresIn: 900}
}

func (s *fakeAuthServer) routes(app *fiber.App) {
	app.Post("/api/v1/login", func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.fingerprints = append(s.fingerprints, c.Get("X-Device-Fingerprint"))

		var input dto.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid input"})
		}
		if input.Email == "limited@example.com" {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Message: "too many attempts", Code: autherror.CodeRateLimited, HTTPStatus: fiber.StatusTooManyRequests,
			})
		}
		if input.Email != s.email || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password)) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "invalid credentials", Code: autherror.CodeInvalidCredentials, HTTPStatus: fiber.StatusUnauthorized,
			})
		}
		return c.Status(fiber.StatusOK).JSON(s.issueTokens(input.Email))
	})

	app.Post("/api/v1/register", func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		var input dto.RegisterInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid input"})
		}
		if input.Email == s.email {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "email already in use", HTTPStatus: fiber.StatusBadRequest,
			})
		}
		s.registered = append(s.registered, input)
		return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{Message: "verification email sent"})
	})

	app.Post("/api/v1/refresh", func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		var input dto.RefreshInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid input"})
		}
		email, ok := s.refreshTokens[input.RefreshToken]
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "refresh token not found", Code: autherror.CodeInvalidCredentials, HTTPStatus: fiber.StatusUnauthorized,
			})
		}
		delete(s.refreshTokens, input.RefreshToken)
		return c.Status(fiber.StatusOK).JSON(s.issueTokens(email))
	})

	app.Delete("/api/v1/session", func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		var input dto.LogoutInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid input"})
		}
		delete(s.refreshTokens, input.RefreshToken)
		return c.Status(fiber.StatusOK).JSON(dto.LogoutResponse{Message: "signed out"})
	})
}

func startClient(t *testing.T, server *fakeAuthServer) *api.Client {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	server.routes(app)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	cfg := &config.Config{
		APIBaseURL:  fmt.Sprintf("http://%s", ln.Addr().String()),
		HTTPTimeout: 5 * time.Second,
	}
	return api.NewClient(cfg, "fp-test", zap.NewNop())
}

func TestClient_Login(t *testing.T) {
	server := newFakeAuthServer(t)
	client := startClient(t, server)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tokens, err := client.Login(ctx, "user@example.com", "pw")

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, 900, tokens.ExpiresIn)

		expiry, err := api.AccessTokenExpiry(tokens.AccessToken)
		require.NoError(t, err)
		assert.True(t, expiry.After(time.Now()))
	})

	t.Run("sends device fingerprint", func(t *testing.T) {
		server.mu.Lock()
		defer server.mu.Unlock()
		require.NotEmpty(t, server.fingerprints)
		assert.Equal(t, "fp-test", server.fingerprints[0])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		_, err := client.Login(ctx, "user@example.com", "wrong")

		require.Error(t, err)
		assert.Equal(t, autherror.CodeInvalidCredentials, autherror.CodeOf(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		_, err := client.Login(ctx, "limited@example.com", "pw")

		require.Error(t, err)
		assert.Equal(t, autherror.CodeRateLimited, autherror.CodeOf(err))
	})
}

func TestClient_RefreshRotation(t *testing.T) {
	server := newFakeAuthServer(t)
	client := startClient(t, server)
	ctx := context.Background()

	tokens, err := client.Login(ctx, "user@example.com", "pw")
	require.NoError(t, err)

	rotated, err := client.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The server honors each refresh token exactly once.
	_, err = client.Refresh(ctx, tokens.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, autherror.CodeInvalidCredentials, autherror.CodeOf(err))

	_, err = client.Refresh(ctx, rotated.RefreshToken)
	require.NoError(t, err)
}

func TestClient_Register(t *testing.T) {
	server := newFakeAuthServer(t)
	client := startClient(t, server)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		resp, err := client.Register(ctx, "new@example.com", "pw", "New User")

		require.NoError(t, err)
		assert.Equal(t, "verification email sent", resp.Message)

		server.mu.Lock()
		defer server.mu.Unlock()
		require.Len(t, server.registered, 1)
		assert.Equal(t, "new@example.com", server.registered[0].Email)
		assert.Equal(t, "New User", server.registered[0].DisplayName)
	})

	t.Run("duplicate email surfaces server message", func(t *testing.T) {
		_, err := client.Register(ctx, "user@example.com", "pw", "")

		require.Error(t, err)
		assert.Equal(t, autherror.CodeUnknown, autherror.CodeOf(err))
		var authErr *autherror.Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "email already in use", authErr.Message)
		assert.Equal(t, fiber.StatusBadRequest, authErr.HTTPStatus)
	})
}

func TestClient_Logout(t *testing.T) {
	server := newFakeAuthServer(t)
	client := startClient(t, server)
	ctx := context.Background()

	tokens, err := client.Login(ctx, "user@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, client.Logout(ctx, tokens.RefreshToken))

	// The refresh token is revoked server-side.
	_, err = client.Refresh(ctx, tokens.RefreshToken)
	require.Error(t, err)
}

func TestClient_NetworkFailure(t *testing.T) {
	cfg := &config.Config{APIBaseURL: "http://127.0.0.1:1", HTTPTimeout: time.Second}
	client := api.NewClient(cfg, "fp-test", zap.NewNop())

	_, err := client.Login(context.Background(), "user@example.com", "pw")

	require.Error(t, err)
	assert.Equal(t, autherror.CodeUnknown, autherror.CodeOf(err))
}
