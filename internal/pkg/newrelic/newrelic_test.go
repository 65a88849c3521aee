package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelicDisabled(t *testing.T) {
	assert.Nil(t, InitNewRelic(&models.Config{}))

	cfg := &models.Config{}
	cfg.NewRelic.Enabled = true
	assert.Nil(t, InitNewRelic(cfg), "missing license key keeps the agent off")
}

func TestEchoMiddlewareWithoutAgent(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := EchoMiddleware(nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTracingWithoutAgent(t *testing.T) {
	ctx, end := StartBackgroundTransaction(context.Background(), nil, "notifier/transaction.created")
	assert.NotPanics(t, func() { end(errors.New("boom")) })

	called := false
	err := WithSegment(ctx, "aggregate", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
