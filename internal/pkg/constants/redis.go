package constants

// Redis key formats
const (
	// Users
	KeyPasswordReset = "user:reset:%s" // Format: user:reset:{token}

	// Notifier
	KeyBudgetAlert = "alert:budget:%s:%s" // Format: alert:budget:{budget_id}:{YYYY-MM-DD}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s:%s" // Format: rate:limit:{scope}:{route}:{caller}
)
