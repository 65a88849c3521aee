package gateway

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/constants"
	"github.com/piresc/xpend/internal/pkg/models"
)

// UserGW publishes user events on the configured broker
type UserGW struct {
	publisher broker.Publisher
}

// NewUserGW creates a gateway over publisher
func NewUserGW(publisher broker.Publisher) *UserGW {
	return &UserGW{publisher: publisher}
}

// PublishPasswordReset announces a newly issued reset token
func (g *UserGW) PublishPasswordReset(_ context.Context, event *models.PasswordResetEvent) error {
	return broker.PublishJSON(g.publisher, constants.SubjectUserPasswordReset, event)
}
