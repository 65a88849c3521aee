package usecase

import (
	"context"

	"github.com/piresc/xpend/internal/pkg/aggregate"
	"github.com/piresc/xpend/internal/pkg/logger"
)

// RunDigest walks every user with budget alerts on and alerts for each
// exceeded budget. A failing user is logged and skipped.
func (u *NotifierUC) RunDigest(ctx context.Context) error {
	users, err := u.userRepo.ListUsersWithBudgetAlerts(ctx)
	if err != nil {
		return err
	}

	var alerted, failed int
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return err
		}

		views, err := u.budgetViews(ctx, user.ID)
		if err != nil {
			failed++
			logger.ErrorCtx(ctx, "Digest failed to load budgets",
				logger.String("user_id", user.ID),
				logger.ErrorField(err))
			continue
		}
		for _, view := range aggregate.ExceededBudgets(views) {
			if err := u.alert(ctx, user, view); err != nil {
				failed++
				logger.ErrorCtx(ctx, "Digest failed to alert",
					logger.String("user_id", user.ID),
					logger.String("budget_id", view.ID),
					logger.ErrorField(err))
				continue
			}
			alerted++
		}
	}

	logger.InfoCtx(ctx, "Budget digest finished",
		logger.Int("users", len(users)),
		logger.Int("exceeded", alerted),
		logger.Int("failed", failed))
	return nil
}
