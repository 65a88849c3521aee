package models

import "time"

// Budget is a spending ceiling for one category of one user
type Budget struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Allocated float64   `json:"allocated" db:"allocated"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BudgetView is a budget with its spent figure computed from the ledger
type BudgetView struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
}

// Remaining is the part of the allocation not yet spent; negative when over budget
func (v BudgetView) Remaining() float64 {
	return v.Allocated - v.Spent
}

// Exceeded reports whether spending went past the allocation
func (v BudgetView) Exceeded() bool {
	return v.Spent > v.Allocated
}

// CreateBudgetRequest is the payload of POST /budgets
type CreateBudgetRequest struct {
	Category  string  `json:"category" validate:"required"`
	Allocated float64 `json:"allocated" validate:"gt=0"`
}

// UpdateBudgetRequest carries a partial update; nil fields are left unchanged
type UpdateBudgetRequest struct {
	Category  *string  `json:"category,omitempty"`
	Allocated *float64 `json:"allocated,omitempty"`
}
