package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	appointmentHandler "lifelink/internal/appointment/handler"
	appointmentService "lifelink/internal/appointment/service"
	appointmentStore "lifelink/internal/appointment/store"
	centerHandler "lifelink/internal/center/handler"
	donorHandler "lifelink/internal/donor/handler"
	donorService "lifelink/internal/donor/service"
	donorStore "lifelink/internal/donor/store"
	"lifelink/internal/platform/auth"
	"lifelink/internal/platform/config"
	"lifelink/internal/platform/httpserver"
	"lifelink/internal/platform/logger"
	"lifelink/internal/platform/metrics"
	"lifelink/internal/platform/middleware"
	"lifelink/internal/platform/mongodb"
	httptransport "lifelink/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect record store", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var jwtValidator middleware.JWTValidator
	if cfg.JWTSigningKey != "" {
		validator, err := auth.NewHS256Validator(cfg.JWTSigningKey)
		if err != nil {
			return err
		}
		jwtValidator = validator
	} else {
		log.Warn("JWT_SIGNING_KEY not set, bearer tokens will not be validated")
	}

	donors := donorService.NewService(donorStore.NewMongo(store.Database()), m, log)
	appointments := appointmentService.NewService(appointmentStore.NewMongo(store.Database()), m, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      m,
		Gatherer:     reg,
		Store:        store,
		JWTValidator: jwtValidator,
		Donors:       donorHandler.New(donors, log),
		Appointments: appointmentHandler.New(appointments, log),
		Centers:      centerHandler.New(log),
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "database", cfg.MongoDatabase)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
