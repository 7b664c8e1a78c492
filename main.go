package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/PizzaBo93/posapppizza/internal/config"
	"github.com/PizzaBo93/posapppizza/internal/handlers"
	"github.com/PizzaBo93/posapppizza/internal/logger"
	"github.com/PizzaBo93/posapppizza/internal/router"
	"github.com/PizzaBo93/posapppizza/internal/services"
	"github.com/PizzaBo93/posapppizza/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting pizza POS backend")

	if cfg.SupabaseURL == "" {
		log.Fatal().Msg("SUPABASE_URL is required")
	}

	storeClient := store.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.StoreTimeout, log)
	sessions := services.NewSessionService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.SessionTTL, log)

	pages, err := handlers.NewPageHandler(cfg.TemplateDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load page templates")
	}

	r := router.SetupRouter(cfg, storeClient, sessions, pages, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
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
