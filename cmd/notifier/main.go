package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/config"
	"github.com/piresc/xpend/internal/pkg/health"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/middleware"
	nrpkg "github.com/piresc/xpend/internal/pkg/newrelic"
	"github.com/piresc/xpend/internal/pkg/retry"
	"github.com/piresc/xpend/internal/pkg/server"
	"github.com/piresc/xpend/internal/stores"
	"github.com/piresc/xpend/services/notifier/gateway"
	"github.com/piresc/xpend/services/notifier/handler"
	"github.com/piresc/xpend/services/notifier/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "xpend-notifier"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/notifier.env"))

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("broker", configs.Events.Broker),
		zap.String("digest_schedule", configs.Notifier.DigestSchedule),
	)

	ctx := context.Background()
	shutdown := server.NewShutdownManager()
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	// The API owns the schema; the notifier only reads
	st, err := stores.Open(ctx, configs, stores.Options{Migrate: false})
	if err != nil {
		zapLogger.Fatal("Failed to open stores", zap.Error(err))
	}
	shutdown.Register("stores", st.Close)

	notifierUC := usecase.NewNotifierUC(configs, st.Users, st.Budgets, st.Transactions, st.AlertLog,
		gateway.NewLogSender(zapLogger))

	// Event consumers
	var subscriber broker.Subscriber
	err = retry.New(retry.StartupConfig()).Execute(ctx, "broker", func(context.Context) error {
		var err error
		subscriber, err = broker.NewSubscriber(configs)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to event broker", zap.Error(err))
	}
	shutdown.Register("broker", func(context.Context) error {
		subscriber.Close()
		return nil
	})

	if err := handler.NewEventHandler(notifierUC, subscriber, nrApp).InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize event consumers", zap.Error(err))
	}

	// Daily digest
	digest, err := handler.NewDigestScheduler(notifierUC, configs.Notifier.DigestSchedule, nrApp)
	if err != nil {
		zapLogger.Fatal("Failed to schedule digest", zap.Error(err))
	}
	digest.Start()
	shutdown.Register("digest", digest.Stop)

	// Health endpoints only
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewService(appName)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(st.Postgres))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(st.Redis))
	health.RegisterHealthEndpoints(e, configs.App.Version, healthService)

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
