package users

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/xpend/services/users UserGW

// UserGW defines the outbound events of the users service
type UserGW interface {
	PublishPasswordReset(ctx context.Context, event *models.PasswordResetEvent) error
}
