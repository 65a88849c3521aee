// Package stores opens the repositories selected by STORE_DRIVER and the
// connections behind them.
package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/xpend/internal/pkg/database"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/retry"
	budgetrepo "github.com/piresc/xpend/services/budgets/repository"
	notifierrepo "github.com/piresc/xpend/services/notifier/repository"
	txnrepo "github.com/piresc/xpend/services/transactions/repository"
	userrepo "github.com/piresc/xpend/services/users/repository"
)

// Supported values of STORE_DRIVER
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// UserStore is the union of what the users service and the notifier need
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsersWithBudgetAlerts(ctx context.Context) ([]*models.User, error)
}

// TransactionStore backs the ledger
type TransactionStore interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
	ListRecentTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}

// BudgetStore backs budgets
type BudgetStore interface {
	CreateBudget(ctx context.Context, budget *models.Budget) error
	GetBudgetByID(ctx context.Context, id string) (*models.Budget, error)
	GetBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]*models.Budget, error)
	UpdateBudget(ctx context.Context, budget *models.Budget) error
	DeleteBudget(ctx context.Context, id string) error
}

// ResetTokenStore keeps password reset tokens
type ResetTokenStore interface {
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

// AlertLogStore de-duplicates budget alerts
type AlertLogStore interface {
	MarkAlerted(ctx context.Context, budgetID, day string, ttl time.Duration) (bool, error)
	UnmarkAlerted(ctx context.Context, budgetID, day string) error
}

// Stores holds the opened repositories. Postgres and Redis are nil in
// memory mode.
type Stores struct {
	Users        UserStore
	Transactions TransactionStore
	Budgets      BudgetStore
	ResetTokens  ResetTokenStore
	AlertLog     AlertLogStore

	Postgres *database.PostgresClient
	Redis    *database.RedisClient
}

// Options tune Open
type Options struct {
	// Migrate applies pending migrations when DB_AUTO_MIGRATE is on
	Migrate bool
}

// Open connects the configured backend, retrying with exponential backoff
func Open(ctx context.Context, cfg *models.Config, opts Options) (*Stores, error) {
	switch cfg.Store.Driver {
	case DriverMemory:
		logger.Warn("Using in-memory stores; data is lost on restart")
		return &Stores{
			Users:        userrepo.NewMemoryUserRepo(),
			Transactions: txnrepo.NewMemoryTransactionRepo(),
			Budgets:      budgetrepo.NewMemoryBudgetRepo(),
			ResetTokens:  userrepo.NewMemoryResetTokenRepo(),
			AlertLog:     notifierrepo.NewMemoryAlertLog(),
		}, nil
	case DriverPostgres, "":
		return openPostgres(ctx, cfg, opts)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openPostgres(ctx context.Context, cfg *models.Config, opts Options) (*Stores, error) {
	retrier := retry.New(retry.StartupConfig())

	var pg *database.PostgresClient
	err := retrier.Execute(ctx, "postgres", func(ctx context.Context) error {
		var err error
		pg, err = database.NewPostgresClient(cfg.Database)
		return err
	})
	if err != nil {
		return nil, err
	}

	if opts.Migrate && cfg.Database.AutoMigrate {
		if err := database.RunMigrations(cfg.Database); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	var rc *database.RedisClient
	err = retrier.Execute(ctx, "redis", func(ctx context.Context) error {
		var err error
		rc, err = database.NewRedisClient(cfg.Redis)
		return err
	})
	if err != nil {
		pg.Close()
		return nil, err
	}

	db := pg.GetDB()
	return &Stores{
		Users:        userrepo.NewUserRepo(db),
		Transactions: txnrepo.NewTransactionRepo(db),
		Budgets:      budgetrepo.NewBudgetRepo(db),
		ResetTokens:  userrepo.NewResetTokenRepo(rc),
		AlertLog:     notifierrepo.NewAlertLog(rc),
		Postgres:     pg,
		Redis:        rc,
	}, nil
}

// Close releases the connections held by s
func (s *Stores) Close(context.Context) error {
	var firstErr error
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
