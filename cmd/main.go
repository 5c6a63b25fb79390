package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/rescue_coordination_system/internal/cache"
	"github.com/shenikar/rescue_coordination_system/internal/config"
	v1 "github.com/shenikar/rescue_coordination_system/internal/handler/http/v1"
	"github.com/shenikar/rescue_coordination_system/internal/realtime"
	"github.com/shenikar/rescue_coordination_system/internal/repository"
	"github.com/shenikar/rescue_coordination_system/internal/repository/memory"
	"github.com/shenikar/rescue_coordination_system/internal/service"
	"github.com/shenikar/rescue_coordination_system/internal/webhook"
	"github.com/shenikar/rescue_coordination_system/pkg/logger"
	"github.com/shenikar/rescue_coordination_system/pkg/postgres"
	redisclient "github.com/shenikar/rescue_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/rescue_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Rescue Coordination API
// @version 1.0
// @description Flood alert lifecycle and rescue coordination engine.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// storage groups the repositories behind the services.
type storage struct {
	alerts    service.AlertRepository
	terminals service.TerminalRepository
	forms     service.RescueFormRepository
	reports   service.ReportRepository
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*storage, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		store := memory.NewStore()
		store.SeedDemo()
		log.Warn("Using in-memory storage, data will not survive a restart")
		return &storage{alerts: store, terminals: store, forms: store, reports: store, close: func() {}}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	return &storage{
		alerts:    repository.NewAlertRepository(dbpool),
		terminals: repository.NewTerminalRepository(dbpool),
		forms:     repository.NewRescueFormRepository(dbpool),
		reports:   repository.NewReportRepository(dbpool),
		close:     dbpool.Close,
	}, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.close()

	var redisClient *goredis.Client
	if cfg.UsesRedis() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	var reportCache service.ReportCache = cache.NewMemory()
	if cfg.CacheBackend == config.CacheBackendRedis {
		reportCache = cache.NewRedis(redisClient)
	}

	hub := realtime.NewHub(cfg.WSSendBuffer, log)
	publishers := realtime.Fanout{hub}

	var webhookWorker *webhook.WebhookWorker
	if cfg.WebhookURL != "" {
		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))
		webhookWorker = webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	postCommit := service.NewPostCommit(reportCache, publishers, log)
	alertService := service.NewAlertService(store.alerts, store.terminals, postCommit, log)
	rescueService := service.NewRescueService(store.alerts, store.forms, postCommit, log)
	reportService := service.NewReportService(store.alerts, store.forms, store.reports, reportCache, postCommit, log)

	handler := v1.NewHandler(alertService, rescueService, reportService, hub, log, cfg)

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":    cfg.HTTPPort,
		"storage": cfg.StorageDriver,
		"cache":   cfg.CacheBackend,
	}).Info("HTTP server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// observers are on hijacked connections that Shutdown does not track
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	if webhookWorker != nil {
		webhookWorker.Wait()
	}

	log.Info("Server gracefully stopped")
}
