package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/config"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/stores"
	budgetusecase "github.com/piresc/xpend/services/budgets/usecase"
	txngateway "github.com/piresc/xpend/services/transactions/gateway"
	txnusecase "github.com/piresc/xpend/services/transactions/usecase"
	usergateway "github.com/piresc/xpend/services/users/gateway"
	userusecase "github.com/piresc/xpend/services/users/usecase"
	"go.uber.org/zap"
)

var defaultBudgets = []models.CreateBudgetRequest{
	{Category: "Food", Allocated: 1000},
	{Category: "Transportation", Allocated: 500},
	{Category: "Entertainment", Allocated: 800},
}

var expenseCategories = []string{"Food", "Transportation", "Entertainment", "Utilities", "Shopping"}

var paymentMethods = []string{"Cash", "Credit Card", "Debit Card", "Bank Transfer"}

func main() {
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/api.env"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	if configs.Store.Driver == stores.DriverMemory {
		zapLogger.Fatal("Seeding needs a persistent store; set STORE_DRIVER=postgres")
	}

	ctx := context.Background()
	st, err := stores.Open(ctx, configs, stores.Options{Migrate: true})
	if err != nil {
		zapLogger.Fatal("Failed to open stores", zap.Error(err))
	}
	defer st.Close(ctx)

	// Events are not published while seeding
	userUC := userusecase.NewUserUC(st.Users, st.ResetTokens, usergateway.NewUserGW(broker.NoopPublisher{}), configs)
	txnUC := txnusecase.NewTransactionUC(st.Transactions, txngateway.NewTransactionGW(broker.NoopPublisher{}))
	budgetUC := budgetusecase.NewBudgetUC(st.Budgets, st.Transactions)

	user, err := seedUser(ctx, userUC, st.Users,
		config.GetEnv("SEED_EMAIL", "admin@xpend.local"),
		config.GetEnv("SEED_PASSWORD", "password"))
	if err != nil {
		zapLogger.Fatal("Failed to seed user", zap.Error(err))
	}

	for i := range defaultBudgets {
		req := defaultBudgets[i]
		_, err := budgetUC.CreateBudget(ctx, user.ID, &req)
		if errors.Is(err, apperrors.ErrDuplicate) {
			continue
		}
		if err != nil {
			zapLogger.Fatal("Failed to seed budget", zap.String("category", req.Category), zap.Error(err))
		}
	}

	faker := gofakeit.New(int64(config.GetEnvAsInt("SEED_RANDOM", 42)))
	count := config.GetEnvAsInt("SEED_TRANSACTIONS", 60)
	end := time.Now().UTC()
	start := end.AddDate(0, -6, 0)

	for i := 0; i < count; i++ {
		req := randomTransaction(faker, start, end)
		if _, err := txnUC.CreateTransaction(ctx, user.ID, req); err != nil {
			zapLogger.Fatal("Failed to seed transaction", zap.Error(err))
		}
	}

	zapLogger.Info("Seed completed",
		zap.String("email", user.Email),
		zap.Int("budgets", len(defaultBudgets)),
		zap.Int("transactions", count),
	)
}

// seedUser registers the demo account, reusing it when it already exists
func seedUser(ctx context.Context, userUC *userusecase.UserUC, users stores.UserStore, email, password string) (*models.User, error) {
	user, err := userUC.Register(ctx, &models.RegisterRequest{Name: "Admin", Email: email, Password: password})
	if errors.Is(err, apperrors.ErrDuplicate) {
		return users.GetUserByEmail(ctx, email)
	}
	return user, err
}

// randomTransaction returns a monthly salary roughly one time in six and an
// expense otherwise
func randomTransaction(faker *gofakeit.Faker, start, end time.Time) *models.CreateTransactionRequest {
	date := models.NewDate(faker.DateRange(start, end))
	if faker.Number(1, 6) == 1 {
		return &models.CreateTransactionRequest{
			Date:          date,
			Description:   faker.Company() + " payroll",
			Category:      "Income",
			Amount:        faker.Price(2500, 4000),
			PaymentMethod: "Bank Transfer",
		}
	}

	return &models.CreateTransactionRequest{
		Date:          date,
		Description:   faker.Company(),
		Category:      faker.RandomString(expenseCategories),
		Amount:        -faker.Price(5, 150),
		PaymentMethod: faker.RandomString(paymentMethods),
	}
}
