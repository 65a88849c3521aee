package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/xpend/internal/pkg/logger"
	nrpkg "github.com/piresc/xpend/internal/pkg/newrelic"
	"github.com/piresc/xpend/services/notifier"
	"github.com/robfig/cron/v3"
)

// digestTimeout bounds one digest run
const digestTimeout = 10 * time.Minute

// DigestScheduler runs the budget digest on a cron schedule
type DigestScheduler struct {
	notifierUC notifier.NotifierUC
	nrApp      *newrelic.Application
	cron       *cron.Cron
}

// NewDigestScheduler registers the digest job on schedule, a standard cron
// expression or descriptor such as @daily
func NewDigestScheduler(notifierUC notifier.NotifierUC, schedule string, nrApp *newrelic.Application) (*DigestScheduler, error) {
	s := &DigestScheduler{
		notifierUC: notifierUC,
		nrApp:      nrApp,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine
func (s *DigestScheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running digest to finish
func (s *DigestScheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *DigestScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, s.nrApp, "notifier/digest")

	err := s.notifierUC.RunDigest(ctx)
	end(err)
	if err != nil {
		logger.Error("Budget digest failed", logger.ErrorField(err))
	}
}
