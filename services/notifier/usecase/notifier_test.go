package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/services/notifier/mocks"
)

var fixedNow = time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	users   *mocks.MockUserReader
	budgets *mocks.MockBudgetReader
	txns    *mocks.MockTransactionReader
	alerts  *mocks.MockAlertLog
	sender  *mocks.MockSender
}

func newTestUC(t *testing.T) (*NotifierUC, testDeps) {
	ctrl := gomock.NewController(t)
	d := testDeps{
		users:   mocks.NewMockUserReader(ctrl),
		budgets: mocks.NewMockBudgetReader(ctrl),
		txns:    mocks.NewMockTransactionReader(ctrl),
		alerts:  mocks.NewMockAlertLog(ctrl),
		sender:  mocks.NewMockSender(ctrl),
	}
	cfg := &models.Config{Notifier: models.NotifierConfig{
		AlertDedupTTL: 24 * time.Hour,
		ResetURL:      "https://app.example.com/reset-password",
	}}
	uc := NewNotifierUC(cfg, d.users, d.budgets, d.txns, d.alerts, d.sender)
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func ann() *models.User {
	return &models.User{ID: "ann", Name: "Ann", Email: "ann@example.com", Settings: models.DefaultSettings()}
}

func overspent() ([]*models.Budget, []*models.Transaction) {
	budgets := []*models.Budget{
		{ID: "b-food", UserID: "ann", Category: "Food", Allocated: 100},
		{ID: "b-fun", UserID: "ann", Category: "Entertainment", Allocated: 50},
	}
	txns := []*models.Transaction{
		{UserID: "ann", Category: "food", Amount: -80},
		{UserID: "ann", Category: "Food", Amount: -40.5},
		{UserID: "ann", Category: "Entertainment", Amount: -60},
	}
	return budgets, txns
}

func TestHandleTransactionEvent_AlertsMatchingCategory(t *testing.T) {
	uc, d := newTestUC(t)
	budgets, txns := overspent()

	d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
	d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
	d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
	d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-food", "2024-02-15", 24*time.Hour).Return(true, nil)

	var sent *models.Notification
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			sent = n
			return nil
		})

	err := uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{
		Type: "transaction.created", UserID: "ann", Category: "FOOD", Amount: -40.5,
	})
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, models.ChannelEmail, sent.Channel)
	assert.Equal(t, "ann@example.com", sent.Recipient)
	assert.Equal(t, "Budget exceeded: Food", sent.Subject)
	assert.Equal(t, "You have spent 120.5 USD of your 100 USD budget for Food.", sent.Body)
}

func TestHandleTransactionEvent_AlreadyAlertedToday(t *testing.T) {
	uc, d := newTestUC(t)
	budgets, txns := overspent()

	d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
	d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
	d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
	d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-food", "2024-02-15", 24*time.Hour).Return(false, nil)

	err := uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"})
	assert.NoError(t, err)
}

func TestHandleTransactionEvent_Skips(t *testing.T) {
	t.Run("alerts disabled", func(t *testing.T) {
		uc, d := newTestUC(t)
		user := ann()
		user.Settings.Notifications.BudgetAlerts = false
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(user, nil)

		assert.NoError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"}))
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, d := newTestUC(t)
		d.users.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, apperrors.New(apperrors.ErrNotFound, "User not found"))

		assert.NoError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ghost"}))
	})

	t.Run("category within budget", func(t *testing.T) {
		uc, d := newTestUC(t)
		budgets, _ := overspent()
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
		d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
		d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return([]*models.Transaction{
			{UserID: "ann", Category: "Food", Amount: -100},
		}, nil)

		assert.NoError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"}))
	})

	t.Run("no channel enabled", func(t *testing.T) {
		uc, d := newTestUC(t)
		budgets, txns := overspent()
		user := ann()
		user.Settings.Notifications.Email = false
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(user, nil)
		d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
		d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
		d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-fun", "2024-02-15", 24*time.Hour).Return(true, nil)

		assert.NoError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "entertainment"}))
	})
}

func TestHandleTransactionEvent_BothChannels(t *testing.T) {
	uc, d := newTestUC(t)
	budgets, txns := overspent()
	user := ann()
	user.Settings.Notifications.SMS = true

	d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(user, nil)
	d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
	d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
	d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-fun", "2024-02-15", 24*time.Hour).Return(true, nil)

	var channels []string
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			channels = append(channels, n.Channel)
			return nil
		}).Times(2)

	require.NoError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Entertainment"}))
	assert.Equal(t, []string{models.ChannelEmail, models.ChannelSMS}, channels)
}

func TestHandleTransactionEvent_Failures(t *testing.T) {
	t.Run("ledger", func(t *testing.T) {
		uc, d := newTestUC(t)
		budgets, _ := overspent()
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
		d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil).AnyTimes()
		d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(nil, errors.New("db down"))

		assert.EqualError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"}), "db down")
	})

	t.Run("alert log", func(t *testing.T) {
		uc, d := newTestUC(t)
		budgets, txns := overspent()
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
		d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
		d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
		d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-food", gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

		assert.EqualError(t, uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"}), "redis down")
	})

	t.Run("sender", func(t *testing.T) {
		uc, d := newTestUC(t)
		budgets, txns := overspent()
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
		d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
		d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
		d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-food", gomock.Any(), gomock.Any()).Return(true, nil)
		d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))
		d.alerts.EXPECT().UnmarkAlerted(gomock.Any(), "b-food", "2024-02-15").Return(nil)

		err := uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"})
		assert.EqualError(t, err, "failed to send email notification: smtp timeout")
	})

	t.Run("sender failure releases mark even if release fails", func(t *testing.T) {
		uc, d := newTestUC(t)
		budgets, txns := overspent()
		d.users.EXPECT().GetUserByID(gomock.Any(), "ann").Return(ann(), nil)
		d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
		d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
		d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-food", gomock.Any(), gomock.Any()).Return(true, nil)
		d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))
		d.alerts.EXPECT().UnmarkAlerted(gomock.Any(), "b-food", gomock.Any()).Return(errors.New("redis down"))

		err := uc.HandleTransactionEvent(context.Background(), &models.TransactionEvent{UserID: "ann", Category: "Food"})
		assert.EqualError(t, err, "failed to send email notification: smtp timeout")
	})
}

func TestHandlePasswordReset(t *testing.T) {
	uc, d := newTestUC(t)

	var sent *models.Notification
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			sent = n
			return nil
		})

	err := uc.HandlePasswordReset(context.Background(), &models.PasswordResetEvent{
		UserID:    "ann",
		Email:     "ann@example.com",
		Name:      "Ann",
		Token:     "abc123",
		ExpiresAt: fixedNow.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, models.ChannelEmail, sent.Channel)
	assert.Equal(t, "ann@example.com", sent.Recipient)
	assert.Contains(t, sent.Body, "https://app.example.com/reset-password?token=abc123")
	assert.Contains(t, sent.Body, "2024-02-15 11:00 UTC")
}

func TestHandlePasswordReset_BadURL(t *testing.T) {
	uc, _ := newTestUC(t)
	uc.cfg.Notifier.ResetURL = "://nope"

	err := uc.HandlePasswordReset(context.Background(), &models.PasswordResetEvent{Token: "abc"})
	assert.Error(t, err)
}

func TestRunDigest(t *testing.T) {
	uc, d := newTestUC(t)
	budgets, txns := overspent()
	bob := &models.User{ID: "bob", Email: "bob@example.com", Settings: models.DefaultSettings()}

	d.users.EXPECT().ListUsersWithBudgetAlerts(gomock.Any()).Return([]*models.User{ann(), bob}, nil)
	d.budgets.EXPECT().ListBudgets(gomock.Any(), "ann").Return(budgets, nil)
	d.txns.EXPECT().ListTransactions(gomock.Any(), "ann").Return(txns, nil)
	d.budgets.EXPECT().ListBudgets(gomock.Any(), "bob").Return(nil, errors.New("db down"))
	d.txns.EXPECT().ListTransactions(gomock.Any(), "bob").Return(nil, nil).AnyTimes()

	d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-food", "2024-02-15", 24*time.Hour).Return(true, nil)
	d.alerts.EXPECT().MarkAlerted(gomock.Any(), "b-fun", "2024-02-15", 24*time.Hour).Return(false, nil)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.RunDigest(context.Background()))
}

func TestRunDigest_ListFailure(t *testing.T) {
	uc, d := newTestUC(t)
	d.users.EXPECT().ListUsersWithBudgetAlerts(gomock.Any()).Return(nil, errors.New("db down"))

	assert.EqualError(t, uc.RunDigest(context.Background()), "db down")
}
