// Package aggregate derives budget spend, summaries and chart series from a
// transaction set. Every function is pure; sums are exact decimals so the
// result does not depend on input order.
package aggregate

import (
	"strings"
	"time"

	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultMonths is the series length used when a caller does not ask for one
const DefaultMonths = 6

// CategoryMatches is the single category policy: case-insensitive exact match
func CategoryMatches(a, b string) bool {
	return strings.EqualFold(a, b)
}

// SpentForCategory sums the absolute value of expenses whose category matches
func SpentForCategory(txns []*models.Transaction, category string) float64 {
	total := decimal.Zero
	for _, t := range txns {
		if t.Amount < 0 && CategoryMatches(t.Category, category) {
			total = total.Add(decimal.NewFromFloat(t.Amount).Abs())
		}
	}
	return total.InexactFloat64()
}

// Summarize splits txns into income and expenses; savings = income - expenses
func Summarize(txns []*models.Transaction) models.FinancialSummary {
	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range txns {
		amount := decimal.NewFromFloat(t.Amount)
		switch {
		case t.Amount > 0:
			income = income.Add(amount)
		case t.Amount < 0:
			expenses = expenses.Add(amount.Abs())
		}
	}
	return models.FinancialSummary{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Savings:  income.Sub(expenses).InexactFloat64(),
	}
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlySeries returns monthCount calendar months ending at ref's month,
// oldest first. A transaction lands in the bucket of its date's year and month.
func MonthlySeries(txns []*models.Transaction, monthCount int, ref time.Time) []models.MonthlyBucket {
	if monthCount <= 0 {
		return []models.MonthlyBucket{}
	}

	type sums struct{ income, expenses decimal.Decimal }
	keys := make([]monthKey, monthCount)
	totals := make(map[monthKey]*sums, monthCount)
	for i := 0; i < monthCount; i++ {
		// day 1 avoids month-end overflow
		first := time.Date(ref.Year(), ref.Month()-time.Month(monthCount-1-i), 1, 0, 0, 0, 0, time.UTC)
		key := monthKey{year: first.Year(), month: first.Month()}
		keys[i] = key
		totals[key] = &sums{income: decimal.Zero, expenses: decimal.Zero}
	}

	for _, t := range txns {
		bucket, ok := totals[monthKey{year: t.Date.Year(), month: t.Date.Month()}]
		if !ok {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch {
		case t.Amount > 0:
			bucket.income = bucket.income.Add(amount)
		case t.Amount < 0:
			bucket.expenses = bucket.expenses.Add(amount.Abs())
		}
	}

	series := make([]models.MonthlyBucket, 0, monthCount)
	for _, key := range keys {
		s := totals[key]
		series = append(series, models.MonthlyBucket{
			Year:     key.year,
			Month:    int(key.month),
			Label:    key.month.String()[:3],
			Income:   s.income.InexactFloat64(),
			Expenses: s.expenses.InexactFloat64(),
		})
	}
	return series
}

// CategoryBreakdown totals expenses per exact category string, in order of
// first appearance
func CategoryBreakdown(txns []*models.Transaction) []models.CategoryTotal {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		current, seen := totals[t.Category]
		if !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = current.Add(decimal.NewFromFloat(t.Amount).Abs())
	}

	breakdown := make([]models.CategoryTotal, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, models.CategoryTotal{
			Category: category,
			Amount:   totals[category].InexactFloat64(),
		})
	}
	return breakdown
}

// NewBudgetView attaches the spent figure of budget's category
func NewBudgetView(budget *models.Budget, txns []*models.Transaction) models.BudgetView {
	return models.BudgetView{
		ID:        budget.ID,
		Category:  budget.Category,
		Allocated: budget.Allocated,
		Spent:     SpentForCategory(txns, budget.Category),
	}
}

// BudgetViews maps NewBudgetView over budgets, keeping their order
func BudgetViews(budgets []*models.Budget, txns []*models.Transaction) []models.BudgetView {
	views := make([]models.BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, NewBudgetView(b, txns))
	}
	return views
}

// ExceededBudgets returns the views whose spent is above allocated
func ExceededBudgets(views []models.BudgetView) []models.BudgetView {
	var exceeded []models.BudgetView
	for _, v := range views {
		if v.Exceeded() {
			exceeded = append(exceeded, v)
		}
	}
	return exceeded
}
