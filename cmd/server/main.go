package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/iac-appeals/aip-sync/common/id"
	"github.com/iac-appeals/aip-sync/common/logger"
	"github.com/iac-appeals/aip-sync/common/otel"
	"github.com/iac-appeals/aip-sync/core/config"
	"github.com/iac-appeals/aip-sync/core/db"
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/ccd"
	"github.com/iac-appeals/aip-sync/internal/docstore"
	"github.com/iac-appeals/aip-sync/internal/flags"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	httprouter "github.com/iac-appeals/aip-sync/internal/http/router"
	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/service"
	"github.com/iac-appeals/aip-sync/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "aip-sync starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Session.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected")

	stores := store.NewStores(redisClient, database, cfg.Session.Prefix, cfg.Session.TTL)

	authProvider := auth.NewProvider(
		auth.NewIdamClient(cfg.Idam.BaseURL),
		auth.NewS2SClient(cfg.S2S.BaseURL, cfg.S2S.MicroserviceName, cfg.S2S.Secret, cfg.S2S.TokenTTL),
	)

	services := service.NewServices(
		stores,
		ccd.NewClient(cfg.Ccd),
		docstore.NewClient(cfg.DocStore),
		authProvider,
	)

	flagProvider := flags.NewStaticProvider(map[string]bool{
		flags.FeeRemission:  cfg.Flags.FeeRemission,
		flags.SetAside:      cfg.Flags.SetAside,
		flags.Ftpa:          cfg.Flags.Ftpa,
		flags.HearingBundle: cfg.Flags.HearingBundle,
	})

	deadlines := journey.NewDeadlineCalculator(journey.WaitingPeriods{
		AfterSubmission:             cfg.Journey.DaysAfterSubmission,
		AfterSubmissionPreRemission: cfg.Journey.DaysAfterSubmissionPreRemission,
		AfterReasonsForAppeal:       cfg.Journey.DaysAfterReasonsForAppeal,
		AfterCmaRequirements:        cfg.Journey.DaysAfterCmaRequirements,
		AfterRemissionRequest:       cfg.Journey.DaysAfterRemissionRequest,
	})
	resolver := journey.NewNextStepResolver(flagProvider, deadlines)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, resolver)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, resolver *journey.NextStepResolver) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, resolver, httprouter.RouterConfig{
		IsProduction: cfg.IsProduction(),
	})

	return router
}
