package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/jeevan_setu/internal/catalog"
	"github.com/shenikar/jeevan_setu/internal/config"
	"github.com/shenikar/jeevan_setu/internal/dispatch"
	"github.com/shenikar/jeevan_setu/internal/geo"
	v1 "github.com/shenikar/jeevan_setu/internal/handler/http/v1"
	"github.com/shenikar/jeevan_setu/internal/repository"
	"github.com/shenikar/jeevan_setu/internal/service"
	"github.com/shenikar/jeevan_setu/internal/session"
	"github.com/shenikar/jeevan_setu/internal/webhook"
	"github.com/shenikar/jeevan_setu/pkg/logger"
	"github.com/shenikar/jeevan_setu/pkg/postgres"
	redisclient "github.com/shenikar/jeevan_setu/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/jeevan_setu/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Jeevan Setu API
// @version 1.0
// @description Emergency dispatch API: patient emergency console, location tracking, medical profile, bystander reports and responder dashboards.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token as "Bearer <token>"
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
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

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель и воркер вебхуков
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Источник позиций и внешние системы диспетчеризации
	positions := geo.NewRedisProvider(redisClient, cfg.LocationMaxAge, log)
	backend := dispatch.NewSimulatedBackend(webhookPublisher, cfg.DispatchPrecheckDelay, cfg.DispatchLockDelay, log)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	revocations := repository.NewRevocationStore(redisClient)
	profileRepo := repository.NewProfileRepository(dbpool, redisClient, cfg.ProfileDraftTTL)
	reportRepo := repository.NewReportRepository(dbpool)
	dispatchRepo := repository.NewDispatchRepository(dbpool)

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Инициализация сервисов
	profileService, err := service.NewProfileService(profileRepo, log)
	if err != nil {
		log.Fatalf("Failed to create profile service: %v", err)
	}
	emergencyService := service.NewEmergencyService(dispatchRepo, profileService, positions, backend, cfg, log)
	tokens := session.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, revocations, emergencyService, tokens, log)
	reportService := service.NewReportService(reportRepo, cat, webhookPublisher, log)

	if cfg.SeedDemoAccounts {
		if err := authService.EnsureDemoAccounts(ctx); err != nil {
			log.Fatalf("Failed to seed demo accounts: %v", err)
		}
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(authService, profileService, reportService, emergencyService, cat, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// Консоли закрываются до остановки сервера, это завершает открытые SSE-потоки
	emergencyService.Shutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	select {
	case <-webhookWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
