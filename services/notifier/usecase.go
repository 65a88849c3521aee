package notifier

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/xpend/services/notifier NotifierUC

// NotifierUC defines the notifier business logic
type NotifierUC interface {
	HandleTransactionEvent(ctx context.Context, event *models.TransactionEvent) error
	HandlePasswordReset(ctx context.Context, event *models.PasswordResetEvent) error
	RunDigest(ctx context.Context) error
}
