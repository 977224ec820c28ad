package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/questlog/questlog/internal/api"
	"github.com/questlog/questlog/internal/infrastructure/config"
	"github.com/questlog/questlog/internal/infrastructure/db/jsonstore"
	"github.com/questlog/questlog/pkg/logger"
)

func main() {
	_ = godotenv.Load() // load .env if present (ok if missing in prod)

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Probe the store up front: a missing or corrupt document is fatal at
	// startup, never silently repaired.
	store := jsonstore.New(cfg.StorePath)
	if _, err := store.Load(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.StorePath).Msg("store unreadable; seed it with cmd/initstore")
	}

	e := api.NewRouter(store, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http listener started")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http listener failed")
		}
	}()

	if cfg.TLS.Enabled() {
		go func() {
			log.Info().Str("port", cfg.TLS.Port).Msg("https listener started")
			if err := e.StartTLS(":"+cfg.TLS.Port, cfg.TLS.CertFile, cfg.TLS.KeyFile); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("https listener failed")
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
