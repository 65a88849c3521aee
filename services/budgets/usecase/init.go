package usecase

import (
	"github.com/piresc/xpend/services/budgets"
)

type BudgetUC struct {
	budgetRepo budgets.BudgetRepo
	txnReader  budgets.TransactionReader
}

// NewBudgetUC creates a new budget usecase instance
func NewBudgetUC(budgetRepo budgets.BudgetRepo, txnReader budgets.TransactionReader) *BudgetUC {
	return &BudgetUC{
		budgetRepo: budgetRepo,
		txnReader:  txnReader,
	}
}
