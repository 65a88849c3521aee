package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/utils"
)

// HandlePasswordReset emails the reset link carried by event. The link is
// sent by email regardless of the user's notification settings.
func (u *NotifierUC) HandlePasswordReset(ctx context.Context, event *models.PasswordResetEvent) error {
	link, err := resetLink(u.cfg.Notifier.ResetURL, event.Token)
	if err != nil {
		return err
	}

	n := &models.Notification{
		Channel:   models.ChannelEmail,
		UserID:    event.UserID,
		Recipient: event.Email,
		Subject:   "Reset your xpend password",
		Body: fmt.Sprintf("Hi %s, open %s to choose a new password. The link expires at %s.",
			event.Name, link, event.ExpiresAt.UTC().Format("2006-01-02 15:04 MST")),
	}
	if err := u.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	logger.InfoCtx(ctx, "Password reset email sent",
		logger.String("user_id", event.UserID),
		logger.String("email", utils.MaskEmail(event.Email)))
	return nil
}

func resetLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid reset url %q: %w", base, err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
