package models

import "time"

// TransactionEvent is published after a transaction is created, updated or deleted
type TransactionEvent struct {
	Type          string    `json:"type"`
	UserID        string    `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// PasswordResetEvent is published when a user asks for a reset token
type PasswordResetEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notification channels
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Notification is one message handed to a delivery channel
type Notification struct {
	Channel   string `json:"channel"`
	UserID    string `json:"user_id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
