package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/config"
	"github.com/piresc/xpend/internal/pkg/health"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/middleware"
	natspkg "github.com/piresc/xpend/internal/pkg/nats"
	nrpkg "github.com/piresc/xpend/internal/pkg/newrelic"
	"github.com/piresc/xpend/internal/pkg/retry"
	"github.com/piresc/xpend/internal/pkg/server"
	"github.com/piresc/xpend/internal/stores"
	budgethandler "github.com/piresc/xpend/services/budgets/handler"
	budgethttp "github.com/piresc/xpend/services/budgets/handler/http"
	budgetusecase "github.com/piresc/xpend/services/budgets/usecase"
	exchangehandler "github.com/piresc/xpend/services/exchange/handler"
	exchangehttp "github.com/piresc/xpend/services/exchange/handler/http"
	exchangeusecase "github.com/piresc/xpend/services/exchange/usecase"
	txngateway "github.com/piresc/xpend/services/transactions/gateway"
	txnhandler "github.com/piresc/xpend/services/transactions/handler"
	txnhttp "github.com/piresc/xpend/services/transactions/handler/http"
	txnusecase "github.com/piresc/xpend/services/transactions/usecase"
	usergateway "github.com/piresc/xpend/services/users/gateway"
	userhandler "github.com/piresc/xpend/services/users/handler"
	userhttp "github.com/piresc/xpend/services/users/handler/http"
	userusecase "github.com/piresc/xpend/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "xpend-api"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/api.env"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("store", configs.Store.Driver),
		zap.String("broker", configs.Events.Broker),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	ctx := context.Background()
	shutdown := server.NewShutdownManager()
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	// Stores
	st, err := stores.Open(ctx, configs, stores.Options{Migrate: true})
	if err != nil {
		zapLogger.Fatal("Failed to open stores", zap.Error(err))
	}
	shutdown.Register("stores", st.Close)

	// Event publisher
	var (
		publisher   broker.Publisher
		closeBroker func()
	)
	err = retry.New(retry.StartupConfig()).Execute(ctx, "broker", func(ctx context.Context) error {
		var err error
		publisher, closeBroker, err = broker.NewPublisher(ctx, configs)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to event broker", zap.Error(err))
	}
	shutdown.Register("broker", func(context.Context) error {
		closeBroker()
		return nil
	})

	// Usecases
	userUC := userusecase.NewUserUC(st.Users, st.ResetTokens, usergateway.NewUserGW(publisher), configs)
	txnUC := txnusecase.NewTransactionUC(st.Transactions, txngateway.NewTransactionGW(publisher))
	budgetUC := budgetusecase.NewBudgetUC(st.Budgets, st.Transactions)
	exchangeUC := exchangeusecase.NewExchangeUC(txnUC, budgetUC)

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	// Health endpoints
	healthService := health.NewService(appName)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(st.Postgres))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(st.Redis))
	if nc, ok := publisher.(*natspkg.Client); ok {
		healthService.AddChecker("nats", health.NewNATSHealthChecker(nc))
	}
	health.RegisterHealthEndpoints(e, configs.App.Version, healthService)

	// Routes
	jwtMiddleware := middleware.JWTAuthMiddleware(configs.JWT)
	var authMiddleware []echo.MiddlewareFunc
	if configs.RateLimit.Enabled && st.Redis != nil {
		authMiddleware = append(authMiddleware,
			middleware.IPRateLimiter(configs.RateLimit.Limit, configs.RateLimit.Period, st.Redis.Client))
	}

	userhandler.NewHandler(userhttp.NewAuthHandler(userUC), userhttp.NewUserHandler(userUC)).
		RegisterRoutes(e, jwtMiddleware, authMiddleware...)
	txnhandler.NewHandler(txnhttp.NewTransactionHandler(txnUC)).RegisterRoutes(e, jwtMiddleware)
	budgethandler.NewHandler(budgethttp.NewBudgetHandler(budgetUC)).RegisterRoutes(e, jwtMiddleware)
	exchangehandler.NewHandler(exchangehttp.NewExchangeHandler(exchangeUC)).RegisterRoutes(e, jwtMiddleware)

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
