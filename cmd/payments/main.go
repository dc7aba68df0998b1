package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/piresc/duespay/internal/pkg/config"
	"github.com/piresc/duespay/internal/pkg/database"
	"github.com/piresc/duespay/internal/pkg/health"
	httpclient "github.com/piresc/duespay/internal/pkg/http"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/middleware"
	nsqpkg "github.com/piresc/duespay/internal/pkg/nsq"
	"github.com/piresc/duespay/internal/pkg/server"
	bankGateway "github.com/piresc/duespay/services/banks/gateway"
	bankHandler "github.com/piresc/duespay/services/banks/handler"
	bankRepository "github.com/piresc/duespay/services/banks/repository"
	bankUsecase "github.com/piresc/duespay/services/banks/usecase"
	"github.com/piresc/duespay/services/payments/gateway"
	"github.com/piresc/duespay/services/payments/handler"
	"github.com/piresc/duespay/services/payments/repository"
	"github.com/piresc/duespay/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := "config/payments.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitAppLoggerFromConfig(configs, appName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	if configs.Korapay.SecretKey == "" {
		logger.Warn("KORAPAY_SECRET_KEY is not set; provider calls and webhook verification will fail")
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Upstream clients, each behind its own breaker
	korapayBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("korapay"))
	korapayClient := korapay.NewClient(configs, korapayBreaker)

	nubapiBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("nubapi"))
	nubapiClient := httpclient.NewClient(httpclient.Config{
		BaseURL:     configs.Banks.BaseURL,
		BearerToken: configs.Banks.Token,
		Timeout:     configs.Banks.Timeout,
		Breaker:     nubapiBreaker,
	})

	// Payments
	paymentRepo := repository.NewPaymentRepository(configs, postgresClient.GetDB())
	eventGW := gateway.NewEventGW(producer)
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, korapayClient, eventGW, eventGW)
	paymentHandler := handler.NewHandler(paymentUC, configs, redisClient.GetClient())

	// Bank directory
	bankRepo := bankRepository.NewBankRepository(configs, redisClient)
	bankUC := bankUsecase.NewBankUC(configs, bankRepo, bankGateway.NewNubapiGW(nubapiClient))
	banksHandler := bankHandler.NewHandler(bankUC, configs, redisClient.GetClient())

	// Health checks
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	healthService.AddBreaker(korapayBreaker)
	healthService.AddBreaker(nubapiBreaker)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewRequestValidator()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	paymentHandler.RegisterRoutes(e)
	banksHandler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })
	shutdownManager.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})
	// Runs first: in-flight payouts still need postgres and the producer.
	shutdownManager.Register(paymentUC.WaitForPayouts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, configs.Server)
	runErr := srv.Run(ctx)

	if err := shutdownManager.Shutdown(context.Background()); err != nil {
		logger.Error("Shutdown completed with errors", logger.Err(err))
	}
	if runErr != nil {
		logger.Fatal("Server stopped", logger.Err(runErr))
	}
}
