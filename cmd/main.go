package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/shenikar/sos_alert_system/internal/config"
	v1 "github.com/shenikar/sos_alert_system/internal/handler/http/v1"
	"github.com/shenikar/sos_alert_system/internal/mailer"
	"github.com/shenikar/sos_alert_system/internal/repository"
	"github.com/shenikar/sos_alert_system/internal/service"
	"github.com/shenikar/sos_alert_system/pkg/hasher"
	"github.com/shenikar/sos_alert_system/pkg/logger"
	"github.com/shenikar/sos_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/sos_alert_system/pkg/redis"

	_ "github.com/shenikar/sos_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SOS Alert System API
// @version 1.0
// @description Backend for citizen SOS alerts, emergency contact notification and police triage.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.Migrate("file://migrations", cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

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

	// Почтовая рассылка
	dispatcher := mailer.NewFanOut(mailer.NewSink(cfg, log), log, cfg)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	contactRepo := repository.NewContactRepository(dbpool)
	notificationRepo := repository.NewNotificationRepository(dbpool)
	resetCodes := repository.NewResetCodeStore(redisClient)

	// Инициализация сервисов
	passwordHasher := hasher.New(cfg.BcryptCost)
	alertService := service.NewAlertService(alertRepo, notificationRepo, contactRepo, userRepo, dispatcher, log, cfg)
	authService := service.NewAuthService(userRepo, resetCodes, passwordHasher, dispatcher, log, cfg)
	userService := service.NewUserService(userRepo, alertRepo, contactRepo, notificationRepo, passwordHasher, log)
	contactService := service.NewContactService(contactRepo, userRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)

	// Ограничение частоты запросов
	limiterStore, err := sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
		Prefix: cfg.RateLimitPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create rate limiter store: %v", err)
	}
	limits, err := v1.NewRateLimits(limiterStore, cfg, log)
	if err != nil {
		log.Fatalf("Failed to configure rate limits: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, authService, userService, contactService, notificationService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.MetricsMiddleware())

	// Служебные маршруты вне лимитов
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(router, limits)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
