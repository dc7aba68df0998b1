package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/config"
	"github.com/piresc/duespay/internal/pkg/database"
	"github.com/piresc/duespay/internal/pkg/health"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/middleware"
	"github.com/piresc/duespay/internal/pkg/server"
	"github.com/piresc/duespay/services/notifications/gateway"
	"github.com/piresc/duespay/services/notifications/handler"
	"github.com/piresc/duespay/services/notifications/repository"
	"github.com/piresc/duespay/services/notifications/usecase"
)

func main() {
	appName := "notifier-service"
	configPath := "config/notifier.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitAppLoggerFromConfig(configs, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	notificationRepo := repository.NewNotificationRepository(configs, postgresClient.GetDB())
	mailer := gateway.NewLogMailer(configs.Platform.Email)
	notificationUC := usecase.NewNotificationUC(configs, notificationRepo, mailer)

	nsqHandler := handler.NewNotificationHandler(notificationUC, configs)
	if err := nsqHandler.InitNSQConsumers(); err != nil {
		logger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register(func(context.Context) error {
		nsqHandler.Stop()
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.NewGracefulServer(e, configs.Server).Run(ctx)

	if err := shutdownManager.Shutdown(context.Background()); err != nil {
		logger.Error("Shutdown completed with errors", logger.Err(err))
	}
	if runErr != nil {
		logger.Fatal("Server stopped", logger.Err(runErr))
	}
}
