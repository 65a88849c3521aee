package models

import (
	"time"
)

// Transaction is a single signed ledger entry: positive amounts are income,
// negative amounts are expenses
type Transaction struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user" db:"user_id"`
	Date          Date      `json:"date" db:"date"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// IsExpense reports whether the transaction is money going out
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0
}

// IsIncome reports whether the transaction is money coming in
func (t *Transaction) IsIncome() bool {
	return t.Amount > 0
}

// CreateTransactionRequest is the payload of POST /transactions
type CreateTransactionRequest struct {
	Date          Date    `json:"date"`
	Description   string  `json:"description" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// UpdateTransactionRequest carries a partial update; nil fields are left unchanged
type UpdateTransactionRequest struct {
	Date          *Date    `json:"date,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
}
