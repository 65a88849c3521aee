package users

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/xpend/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
	UpdateSettings(ctx context.Context, userID string, req *models.UpdateSettingsRequest) (*models.Settings, error)

	// password reset
	RequestPasswordReset(ctx context.Context, req *models.ResetPasswordRequest) error
	ConfirmPasswordReset(ctx context.Context, req *models.ConfirmResetRequest) error
}
