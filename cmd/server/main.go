package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carmart/marketplace-api/internal/api"
	"github.com/carmart/marketplace-api/internal/core/lock"
	"github.com/carmart/marketplace-api/internal/core/service"
	"github.com/carmart/marketplace-api/internal/infrastructure/config"
	"github.com/carmart/marketplace-api/internal/infrastructure/db/jsonfile"
	"github.com/carmart/marketplace-api/internal/infrastructure/events"
	"github.com/carmart/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := jsonfile.NewStore(cfg.Store.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open table store")
	}

	userRepo := jsonfile.NewUserRepository(store)
	carRepo := jsonfile.NewCarRepository(store)

	locks := lock.NewTable()
	broker := events.NewBroker(log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.StartingBalance)
	userService := service.NewUserService(userRepo, log)
	carService := service.NewCarService(carRepo, userRepo, locks, broker, log)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: api.NewHandler(api.Dependencies{
			Auth:   authService,
			Users:  userService,
			Cars:   carService,
			Broker: broker,
			Log:    log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("data_dir", cfg.Store.DataDir).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
