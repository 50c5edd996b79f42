package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"messmate-admin/internal/client"
	"messmate-admin/internal/config"
	"messmate-admin/internal/logger"
	"messmate-admin/internal/router"
	"messmate-admin/internal/session"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Str("backend", cfg.BackendURL).Msg("Starting admin gateway")

	sessions := session.NewStore(cfg.StateDir, log)
	if err := sessions.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load persisted session")
	}
	if sessions.Authenticated() {
		log.Info().Msg("Restored persisted admin session")
	}

	apiClient := client.New(cfg.BackendURL, sessions, log)

	r := router.SetupRouter(cfg, sessions, apiClient, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Gateway listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
