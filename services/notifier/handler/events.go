package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/constants"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	nrpkg "github.com/piresc/xpend/internal/pkg/newrelic"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/services/notifier"
)

// handleTimeout bounds the work done for a single message
const handleTimeout = 30 * time.Second

// EventHandler consumes domain events for the notifier
type EventHandler struct {
	notifierUC notifier.NotifierUC
	subscriber broker.Subscriber
	nrApp      *newrelic.Application
}

// NewEventHandler creates a new event handler; nrApp may be nil
func NewEventHandler(notifierUC notifier.NotifierUC, subscriber broker.Subscriber, nrApp *newrelic.Application) *EventHandler {
	return &EventHandler{
		notifierUC: notifierUC,
		subscriber: subscriber,
		nrApp:      nrApp,
	}
}

// InitConsumers subscribes to the transaction and password reset subjects
func (h *EventHandler) InitConsumers() error {
	for _, subject := range constants.TransactionSubjects {
		if err := h.subscriber.Subscribe(subject, h.handleTransactionEvent); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}
	if err := h.subscriber.Subscribe(constants.SubjectUserPasswordReset, h.handlePasswordReset); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectUserPasswordReset, err)
	}
	return nil
}

// handleTransactionEvent drops malformed payloads so they are not redelivered
func (h *EventHandler) handleTransactionEvent(data []byte) error {
	var event models.TransactionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("Dropping malformed transaction event", logger.ErrorField(err))
		return nil
	}

	ctx, cancel := h.messageContext(event.Type)
	defer cancel()
	ctx = requestcontext.WithUserID(ctx, event.UserID)
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, h.nrApp, "notifier/"+event.Type)

	logger.InfoCtx(ctx, "Received transaction event",
		logger.String("type", event.Type),
		logger.String("user_id", event.UserID),
		logger.String("category", event.Category))

	err := h.notifierUC.HandleTransactionEvent(ctx, &event)
	end(err)
	return err
}

func (h *EventHandler) handlePasswordReset(data []byte) error {
	var event models.PasswordResetEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("Dropping malformed password reset event", logger.ErrorField(err))
		return nil
	}

	ctx, cancel := h.messageContext(constants.SubjectUserPasswordReset)
	defer cancel()
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, h.nrApp, "notifier/"+constants.SubjectUserPasswordReset)

	err := h.notifierUC.HandlePasswordReset(ctx, &event)
	end(err)
	return err
}

func (h *EventHandler) messageContext(subject string) (context.Context, context.CancelFunc) {
	ctx := requestcontext.WithServiceName(context.Background(), "xpend-notifier")
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
	logger.Debug("Handling message", logger.String("subject", subject))
	return context.WithTimeout(ctx, handleTimeout)
}
