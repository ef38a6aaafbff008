package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/config"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/router"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/seed"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// In-memory stores: the whole inventory lives and dies with the process.
	stores := router.Stores{
		Activos:     repository.NewActivoRepository(),
		RMAs:        repository.NewRMARepository(),
		Materiales:  repository.NewMaterialRepository(),
		Movimientos: repository.NewMovimientoRepository(),
	}

	catalogo := seed.Catalogo(cfg.AlmacenDefault)
	matriz := seed.Matriz()

	if cfg.SeedDemo {
		if err := seed.DemoInventario(context.Background(), stores.Activos, stores.Materiales, cfg.AlmacenDefault); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo inventory")
		}
		log.Info().Msg("demo inventory seeded")
	}

	r := router.New(cfg, stores, catalogo, matriz)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Maestro de Inventarios listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
