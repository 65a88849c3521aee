package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/utils"
	"go.uber.org/zap"
)

// LogSender writes every notification as a structured log line instead of
// handing it to a mail or SMS provider
type LogSender struct {
	log *logger.ZapLogger
}

// NewLogSender creates a sender logging through log
func NewLogSender(log *logger.ZapLogger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, n *models.Notification) error {
	switch n.Channel {
	case models.ChannelEmail, models.ChannelSMS:
	default:
		return fmt.Errorf("unknown notification channel %q", n.Channel)
	}

	to := n.Recipient
	if n.Channel == models.ChannelEmail {
		to = utils.MaskEmail(to)
	}
	s.log.Info("Notification delivered",
		zap.String("channel", n.Channel),
		zap.String("user_id", n.UserID),
		zap.String("recipient", to),
		zap.String("subject", n.Subject),
		zap.String("body", n.Body))
	return ctx.Err()
}
