package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tacworldhq/storefront-backend/api/routes"
	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/internal/sessions"
	"github.com/tacworldhq/storefront-backend/pkg/config"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
	"github.com/tacworldhq/storefront-backend/pkg/metrics"
	pkgredis "github.com/tacworldhq/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := catalog.NewFromSeed()
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	advisorMetrics := metrics.NewAdvisorMetrics(prometheus.DefaultRegisterer)

	advisorClient, err := advisor.NewClient(context.Background(), cfg.Gemini, logg, advisorMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap advisor client", err)
		os.Exit(1)
	}

	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	registry := sessions.NewRegistry(store, sessions.ClientStarter{Client: advisorClient}, cfg.Session, logg)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go registry.Run(sweepCtx)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, store, registry, advisorClient, redisClient),
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		logg.Info(ctx, "shutting down api server")
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
