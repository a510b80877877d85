package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/guest-services-api/api/swagger"
	"github.com/noah-isme/guest-services-api/internal/handler"
	"github.com/noah-isme/guest-services-api/internal/middleware"
	"github.com/noah-isme/guest-services-api/internal/repository"
	"github.com/noah-isme/guest-services-api/internal/service"
	"github.com/noah-isme/guest-services-api/internal/validation"
	"github.com/noah-isme/guest-services-api/pkg/cache"
	"github.com/noah-isme/guest-services-api/pkg/config"
	"github.com/noah-isme/guest-services-api/pkg/database"
	"github.com/noah-isme/guest-services-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/guest-services-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/guest-services-api/pkg/middleware/requestid"
	"github.com/noah-isme/guest-services-api/pkg/storage"
)

// @title Guest Services API
// @version 1.0.0
// @description Hotel guest service request tracker
// @BasePath /
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		reportFailure(logr, err)
		os.Exit(1)
	}
}

// reportFailure logs the terminal error and flushes it; os.Exit skips deferred calls.
func reportFailure(logr *zap.Logger, err error) {
	logr.Error("server stopped with error", zap.Error(err))
	_ = logr.Sync()
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, request cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
			redisClient = nil
		}
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		return err
	}

	validate := validation.New()
	metricsSvc := service.NewMetricsService()

	requestRepo := repository.NewRequestRepository(db, validate)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)
	requestSvc := service.NewRequestService(requestRepo, uploads, cacheSvc, metricsSvc, validate, logr, service.RequestServiceConfig{CacheTTL: cfg.Cache.TTL})
	exportSvc := service.NewExportService(requestSvc, nil, nil)

	requestHandler := handler.NewRequestHandler(requestSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, requestRepo)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.Static(cfg.Uploads.PublicPath, uploads.Dir())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requestHandler.RegisterRoutes(r.Group("/api"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
