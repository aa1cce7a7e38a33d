package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelter-care/internal/adapters/auth/jwtauth"
	"shelter-care/internal/adapters/auth/remoteauth"
	"shelter-care/internal/adapters/images/localdisk"
	"shelter-care/internal/adapters/owners/directory"
	pg "shelter-care/internal/adapters/storage/postgres"
	"shelter-care/internal/adapters/timesource/httptime"
	"shelter-care/internal/config"
	"shelter-care/internal/middleware"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/logger"
	"shelter-care/internal/ports/auth"
	"shelter-care/internal/ports/owners"
	"shelter-care/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:       log,
		StoreTimeout: cfg.StoreTimeout,
		UploadDir:    cfg.UploadDir,
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		var err error
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set: using in-memory store", nil)
	}

	verifier, err := buildVerifier(cfg, log)
	if err != nil {
		return err
	}
	opts.AuthVerifier = verifier

	dir, err := buildOwners(cfg)
	if err != nil {
		return err
	}
	opts.Owners = dir

	clk, err := buildClock(cfg, log)
	if err != nil {
		return err
	}
	opts.Clock = clk

	if cfg.UploadDir != "" {
		store, err := localdisk.New(cfg.UploadDir, "/uploads")
		if err != nil {
			return err
		}
		opts.Images = store
	}

	if cfg.RateLimitRPS > 0 {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": cfg.Addr()})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// JWT local tiene prioridad sobre el servicio de identidad.
func buildVerifier(cfg config.Config, log logger.Logger) (auth.AuthVerifier, error) {
	switch {
	case cfg.AuthJWTSecret != "":
		v, err := jwtauth.NewVerifier(cfg.AuthJWTSecret)
		if err != nil {
			return nil, err
		}
		return v, nil
	case cfg.AuthVerifyURL != "":
		v, err := remoteauth.NewVerifier(remoteauth.Config{
			BaseURL: cfg.AuthVerifyURL,
			APIKey:  cfg.AuthVerifyAPIKey,
		})
		if err != nil {
			return nil, err
		}
		log.Info("verifying tokens against identity service", logger.Fields{"url": cfg.AuthVerifyURL})
		return v, nil
	}
	log.Warn("no AUTH_JWT_SECRET or AUTH_VERIFY_URL: dev mode, X-Debug-User-ID accepted", nil)
	return nil, nil
}

func buildOwners(cfg config.Config) (owners.Directory, error) {
	if cfg.OwnerDirectoryURL == "" {
		return directory.NewStatic(directory.DevOwner), nil
	}
	return directory.NewHTTPDirectory(directory.Config{
		BaseURL: cfg.OwnerDirectoryURL,
		APIKey:  cfg.OwnerDirectoryAPIKey,
	})
}

func buildClock(cfg config.Config, log logger.Logger) (*clock.Provider, error) {
	opts := clock.Options{Location: cfg.Timezone, Logger: log, Timeout: cfg.TimeSourceTimeout}
	if cfg.TimeSourceURL != "" {
		src, err := httptime.New(httptime.Config{URL: cfg.TimeSourceURL, Timeout: cfg.TimeSourceTimeout})
		if err != nil {
			return nil, err
		}
		opts.Source = src
	}
	return clock.NewProvider(opts), nil
}
