package usecase

import (
	"time"

	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/services/notifier"
)

type NotifierUC struct {
	cfg        *models.Config
	userRepo   notifier.UserReader
	budgetRepo notifier.BudgetReader
	txnRepo    notifier.TransactionReader
	alertLog   notifier.AlertLog
	sender     notifier.Sender
	now        func() time.Time
}

// NewNotifierUC creates a new notifier usecase instance
func NewNotifierUC(
	cfg *models.Config,
	userRepo notifier.UserReader,
	budgetRepo notifier.BudgetReader,
	txnRepo notifier.TransactionReader,
	alertLog notifier.AlertLog,
	sender notifier.Sender,
) *NotifierUC {
	return &NotifierUC{
		cfg:        cfg,
		userRepo:   userRepo,
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
		alertLog:   alertLog,
		sender:     sender,
		now:        time.Now,
	}
}
