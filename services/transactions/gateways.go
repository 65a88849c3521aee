package transactions

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/xpend/services/transactions TransactionGW

// TransactionGW defines the outbound events of the ledger
type TransactionGW interface {
	PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) error
}
