package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultAPIBaseURL       = "http://localhost:8080"
	DefaultHTTPTimeoutSec   = 15
	DefaultRefreshWindowSec = 120
	DefaultUnlockReason     = "Unlock your account"
	DefaultSignInReason     = "Sign in to your account"
	DefaultEnableReason     = "Confirm enabling biometric sign-in"
	DefaultSecureStorePath  = "expense-track-credentials.enc"
)

type Config struct {
	Env             string
	APIBaseURL      string
	HTTPTimeout     time.Duration
	RefreshWindow   time.Duration
	UnlockReason    string
	SignInReason    string
	EnableReason    string
	SecureStorePath string
}

func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		APIBaseURL:      getEnv("AUTH_API_BASE_URL", DefaultAPIBaseURL),
		HTTPTimeout:     time.Duration(getEnvAsInt("AUTH_HTTP_TIMEOUT_SEC", DefaultHTTPTimeoutSec)) * time.Second,
		RefreshWindow:   time.Duration(getEnvAsInt("AUTH_REFRESH_WINDOW_SEC", DefaultRefreshWindowSec)) * time.Second,
		UnlockReason:    getEnv("BIOMETRIC_UNLOCK_REASON", DefaultUnlockReason),
		SignInReason:    getEnv("BIOMETRIC_SIGNIN_REASON", DefaultSignInReason),
		EnableReason:    getEnv("BIOMETRIC_ENABLE_REASON", DefaultEnableReason),
		SecureStorePath: getEnv("SECURE_STORE_PATH", DefaultSecureStorePath),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
