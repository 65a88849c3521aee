package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), "xpend-test"), logs
}

func TestLogHTTPRequestLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"success", http.StatusOK, nil, zapcore.InfoLevel, "Request processed"},
		{"client error", http.StatusNotFound, nil, zapcore.WarnLevel, "Client error"},
		{"server error", http.StatusInternalServerError, errors.New("boom"), zapcore.ErrorLevel, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()

			zl.LogHTTPRequest(nil, http.MethodGet, "/budgets", "127.0.0.1", "user-1", "req-1", tt.status, 5*time.Millisecond, tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)
			assert.Equal(t, "user-1", entry.ContextMap()["user_id"])
			assert.Equal(t, int64(tt.status), entry.ContextMap()["status"])
		})
	}
}

func TestCtxHelpersAttachRequestFields(t *testing.T) {
	zl, logs := newObservedLogger()
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	ctx := requestcontext.WithRequestID(context.Background(), "req-9")
	ctx = requestcontext.WithUserID(ctx, "user-9")

	InfoCtx(ctx, "budget created", String("category", "Food"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "user-9", fields["user_id"])
	assert.Equal(t, "Food", fields["category"])
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/transactions?limit=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		c.Set(requestcontext.EchoUserIDKey, "user-1")
		return c.NoContent(http.StatusTeapot)
	})

	require.NoError(t, handler(c))
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/transactions?limit=3", fields["path"])
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}
