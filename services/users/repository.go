package users

import (
	"context"
	"time"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/xpend/services/users UserRepo,ResetTokenRepo

// UserRepo defines the user store
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsersWithBudgetAlerts(ctx context.Context) ([]*models.User, error)
}

// ResetTokenRepo stores single-use password reset tokens
type ResetTokenRepo interface {
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	// ConsumeResetToken returns the owner of token and deletes it
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}
