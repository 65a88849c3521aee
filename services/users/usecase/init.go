package usecase

import (
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/services/users"
)

type UserUC struct {
	userRepo  users.UserRepo
	tokenRepo users.ResetTokenRepo
	userGW    users.UserGW
	cfg       *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	tokenRepo users.ResetTokenRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		userGW:    userGW,
		cfg:       cfg,
	}
}
