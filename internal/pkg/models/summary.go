package models

// FinancialSummary aggregates a transaction set
type FinancialSummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// MonthlyBucket holds the income and expenses of one calendar month
type MonthlyBucket struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CategoryTotal is the expense total of one category
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ExportData is the JSON export document
type ExportData struct {
	Transactions []*Transaction `json:"transactions"`
	Budgets      []BudgetView   `json:"budgets"`
}

// ImportResult reports what an import created
type ImportResult struct {
	Transactions int `json:"transactions"`
	Budgets      int `json:"budgets"`
	Skipped      int `json:"skipped"`
}
