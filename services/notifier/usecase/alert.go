package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/xpend/internal/pkg/aggregate"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/export"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"golang.org/x/sync/errgroup"
)

// HandleTransactionEvent alerts the owner of a ledger change about every
// exceeded budget matching the changed category
func (u *NotifierUC) HandleTransactionEvent(ctx context.Context, event *models.TransactionEvent) error {
	user, err := u.userRepo.GetUserByID(ctx, event.UserID)
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.WarnCtx(ctx, "Dropping event for unknown user",
			logger.String("user_id", event.UserID),
			logger.String("type", event.Type))
		return nil
	}
	if err != nil {
		return err
	}
	if !user.Settings.Notifications.BudgetAlerts {
		return nil
	}

	views, err := u.budgetViews(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, view := range aggregate.ExceededBudgets(views) {
		if !aggregate.CategoryMatches(view.Category, event.Category) {
			continue
		}
		if err := u.alert(ctx, user, view); err != nil {
			return err
		}
	}
	return nil
}

func (u *NotifierUC) budgetViews(ctx context.Context, userID string) ([]models.BudgetView, error) {
	var (
		budgetList []*models.Budget
		txns       []*models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgetList, err = u.budgetRepo.ListBudgets(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = u.txnRepo.ListTransactions(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return aggregate.BudgetViews(budgetList, txns), nil
}

// alert sends at most one notification per budget and day
func (u *NotifierUC) alert(ctx context.Context, user *models.User, view models.BudgetView) error {
	day := u.now().UTC().Format(models.DateLayout)
	first, err := u.alertLog.MarkAlerted(ctx, view.ID, day, u.cfg.Notifier.AlertDedupTTL)
	if err != nil {
		return err
	}
	if !first {
		logger.Debug("Budget alert already sent today",
			logger.String("budget_id", view.ID),
			logger.String("day", day))
		return nil
	}

	subject := fmt.Sprintf("Budget exceeded: %s", view.Category)
	body := fmt.Sprintf("You have spent %s %s of your %s %s budget for %s.",
		export.FormatAmount(view.Spent), user.Settings.Currency,
		export.FormatAmount(view.Allocated), user.Settings.Currency,
		view.Category)

	if err := u.deliver(ctx, user, subject, body); err != nil {
		if unmarkErr := u.alertLog.UnmarkAlerted(ctx, view.ID, day); unmarkErr != nil {
			logger.WarnCtx(ctx, "Failed to release budget alert mark",
				logger.String("budget_id", view.ID),
				logger.ErrorField(unmarkErr))
		}
		return err
	}
	return nil
}

// deliver sends subject and body over every channel the user opted into
func (u *NotifierUC) deliver(ctx context.Context, user *models.User, subject, body string) error {
	var sent int
	for _, channel := range channels(user.Settings.Notifications) {
		n := &models.Notification{
			Channel:   channel,
			UserID:    user.ID,
			Recipient: recipient(user, channel),
			Subject:   subject,
			Body:      body,
		}
		if err := u.sender.Send(ctx, n); err != nil {
			return fmt.Errorf("failed to send %s notification: %w", channel, err)
		}
		sent++
	}

	if sent == 0 {
		logger.InfoCtx(ctx, "User has no delivery channel enabled",
			logger.String("user_id", user.ID))
	}
	return nil
}

func channels(n models.Notifications) []string {
	var out []string
	if n.Email {
		out = append(out, models.ChannelEmail)
	}
	if n.SMS {
		out = append(out, models.ChannelSMS)
	}
	return out
}

// recipient addresses email by address; sms is routed by account id
func recipient(user *models.User, channel string) string {
	if channel == models.ChannelEmail {
		return user.Email
	}
	return user.ID
}
