package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/avifenesh/expense-track-sub001/config"
	"github.com/avifenesh/expense-track-sub001/internal/auth/api"
	"github.com/avifenesh/expense-track-sub001/internal/auth/biometric"
	"github.com/avifenesh/expense-track-sub001/internal/auth/service"
	"github.com/avifenesh/expense-track-sub001/internal/auth/session"
	"github.com/avifenesh/expense-track-sub001/internal/auth/store"
	autherror "github.com/avifenesh/expense-track-sub001/internal/errors"
)

const fingerprintKey = "device.fingerprint"

// Dev harness: wires the session library with the encrypted file store and a
// no-hardware biometric device, runs startup restoration and prints the
// resolved state.
func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	secure := store.NewFile(cfg.SecureStorePath, os.Getenv("SECURE_STORE_PASSPHRASE"))

	fingerprint, err := secure.Get(ctx, fingerprintKey)
	if errors.Is(err, autherror.ErrKeyNotFound) {
		fingerprint = api.NewFingerprint()
		err = secure.Set(ctx, fingerprintKey, fingerprint)
	}
	if err != nil {
		logger.Fatal("secure store unavailable", zap.Error(err))
	}

	sessions := session.NewStore()
	svc := service.NewSessionService(
		api.NewClient(cfg, fingerprint, logger),
		store.NewCredentials(secure),
		biometric.NewGate(biometric.UnsupportedDevice{}, secure, logger),
		sessions,
		cfg,
		logger,
	)

	status := svc.Initialize(ctx)
	current := sessions.Session()
	if current.User != nil {
		fmt.Printf("session: %s (%s)\n", status, current.User.Email)
		return
	}
	fmt.Printf("session: %s\n", status)
}
