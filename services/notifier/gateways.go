package notifier

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/xpend/services/notifier Sender

// Sender delivers a notification over its channel
type Sender interface {
	Send(ctx context.Context, n *models.Notification) error
}
