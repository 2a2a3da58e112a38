package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"covidportal/internal/auth"
	"covidportal/internal/config"
	"covidportal/internal/logging"
	"covidportal/internal/repository"
	"covidportal/internal/server"
)

func main() {
	logger := logging.NewDefault()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration failed", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := repository.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("acquiring store connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	repo := repository.NewManager(db)

	tokenService := auth.NewTokenService(
		[]byte(cfg.SecretKey),
		cfg.TokenExpiration,
		"covid-portal",
		logger.With("component", "token_service"),
	)
	provider := auth.NewUserProvider(repo.Users(), logger.With("component", "user_provider"))
	authenticator := auth.NewAuthenticator(provider, tokenService, logger.With("component", "authenticator"))

	srv := server.New(authenticator, tokenService, repo, logger.With("component", "http"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case sig := <-waitForSignal():
		logger.Info("shutting down", "signal", sig.String())
		if err := srv.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}

func waitForSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return ch
}
