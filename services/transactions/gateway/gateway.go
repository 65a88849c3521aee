package gateway

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/models"
)

// TransactionGW publishes ledger events on the configured broker
type TransactionGW struct {
	publisher broker.Publisher
}

// NewTransactionGW creates a gateway over publisher
func NewTransactionGW(publisher broker.Publisher) *TransactionGW {
	return &TransactionGW{publisher: publisher}
}

// PublishTransactionEvent publishes event on the subject named by its type
func (g *TransactionGW) PublishTransactionEvent(_ context.Context, event *models.TransactionEvent) error {
	return broker.PublishJSON(g.publisher, event.Type, event)
}
