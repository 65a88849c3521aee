package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// WithSegment runs fn inside a segment of the transaction carried by ctx, if any
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}

// StartBackgroundTransaction starts a non-web transaction for message and
// cron work. The returned end function is safe to call when nrApp is nil.
func StartBackgroundTransaction(ctx context.Context, nrApp *newrelic.Application, name string) (context.Context, func(err error)) {
	if nrApp == nil {
		return ctx, func(error) {}
	}
	txn := nrApp.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), func(err error) {
		if err != nil {
			txn.NoticeError(err)
		}
		txn.End()
	}
}
