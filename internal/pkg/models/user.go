package models

import (
	"time"
)

// Default settings for new accounts
const (
	DefaultCurrency = "USD"
)

// User represents an account holder
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Settings holds per-user preferences
type Settings struct {
	Currency      string        `json:"currency"`
	Notifications Notifications `json:"notifications"`
}

// Notifications holds the delivery channels a user opted into
type Notifications struct {
	Email        bool `json:"email"`
	SMS          bool `json:"sms"`
	BudgetAlerts bool `json:"budgetAlerts"`
}

// DefaultSettings returns the settings assigned on registration
func DefaultSettings() Settings {
	return Settings{
		Currency: DefaultCurrency,
		Notifications: Notifications{
			Email:        true,
			SMS:          false,
			BudgetAlerts: true,
		},
	}
}

// RegisterRequest is the payload of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// ResetPasswordRequest starts a password reset
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ConfirmResetRequest completes a password reset
type ConfirmResetRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest carries optional profile changes
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// UpdateSettingsRequest carries optional settings changes
type UpdateSettingsRequest struct {
	Currency      *string                    `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Notifications *UpdateNotificationsRequest `json:"notifications,omitempty"`
}

// UpdateNotificationsRequest carries optional notification flags
type UpdateNotificationsRequest struct {
	Email        *bool `json:"email,omitempty"`
	SMS          *bool `json:"sms,omitempty"`
	BudgetAlerts *bool `json:"budgetAlerts,omitempty"`
}
