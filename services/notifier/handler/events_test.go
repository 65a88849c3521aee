package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/xpend/internal/pkg/broker"
	"github.com/piresc/xpend/internal/pkg/constants"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/services/notifier/mocks"
)

type fakeSubscriber struct {
	handlers map[string]broker.Handler
	failOn   string
}

func (s *fakeSubscriber) Subscribe(subject string, handler broker.Handler) error {
	if subject == s.failOn {
		return errors.New("subscription refused")
	}
	s.handlers[subject] = handler
	return nil
}

func (s *fakeSubscriber) Close() {}

func newSubscriber() *fakeSubscriber {
	return &fakeSubscriber{handlers: make(map[string]broker.Handler)}
}

func TestInitConsumers(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := newSubscriber()

	require.NoError(t, NewEventHandler(mocks.NewMockNotifierUC(ctrl), sub, nil).InitConsumers())
	for _, subject := range append(constants.TransactionSubjects, constants.SubjectUserPasswordReset) {
		assert.Contains(t, sub.handlers, subject)
	}

	failing := newSubscriber()
	failing.failOn = constants.SubjectUserPasswordReset
	err := NewEventHandler(mocks.NewMockNotifierUC(ctrl), failing, nil).InitConsumers()
	assert.ErrorContains(t, err, "user.password_reset")
}

func TestTransactionEventDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockNotifierUC(ctrl)
	sub := newSubscriber()
	require.NoError(t, NewEventHandler(uc, sub, nil).InitConsumers())

	event := models.TransactionEvent{
		Type:          constants.SubjectTransactionUpdated,
		UserID:        "ann",
		TransactionID: "t1",
		Category:      "Food",
		Amount:        -12,
		OccurredAt:    time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC),
	}
	uc.EXPECT().HandleTransactionEvent(gomock.Any(), &event).
		DoAndReturn(func(ctx context.Context, _ *models.TransactionEvent) error {
			assert.Equal(t, "ann", requestcontext.GetUserID(ctx))
			assert.NotEmpty(t, requestcontext.GetRequestID(ctx))
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NoError(t, sub.handlers[constants.SubjectTransactionUpdated](data))
}

func TestTransactionEventErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockNotifierUC(ctrl)
	sub := newSubscriber()
	require.NoError(t, NewEventHandler(uc, sub, nil).InitConsumers())

	uc.EXPECT().HandleTransactionEvent(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	assert.EqualError(t, sub.handlers[constants.SubjectTransactionCreated]([]byte(`{"user_id":"ann"}`)), "redis down")
}

func TestMalformedPayloadsAreDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := newSubscriber()
	// no expectations: the usecase must not be reached
	require.NoError(t, NewEventHandler(mocks.NewMockNotifierUC(ctrl), sub, nil).InitConsumers())

	assert.NoError(t, sub.handlers[constants.SubjectTransactionCreated]([]byte("{not json")))
	assert.NoError(t, sub.handlers[constants.SubjectUserPasswordReset]([]byte("[]")))
}

func TestPasswordResetDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockNotifierUC(ctrl)
	sub := newSubscriber()
	require.NoError(t, NewEventHandler(uc, sub, nil).InitConsumers())

	uc.EXPECT().HandlePasswordReset(gomock.Any(), &models.PasswordResetEvent{UserID: "ann", Email: "ann@example.com", Token: "abc"}).Return(nil)
	assert.NoError(t, sub.handlers[constants.SubjectUserPasswordReset]([]byte(`{"user_id":"ann","email":"ann@example.com","token":"abc"}`)))
}
