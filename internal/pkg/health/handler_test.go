package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRegisterHealthEndpoints(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		e := echo.New()
		service := NewService("xpend-api")
		service.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
		service.AddChecker("redis", nil)
		RegisterHealthEndpoints(e, "1.2.3", service)

		for _, path := range []string{"/health", "/ready"} {
			rec := serve(e, path)
			assert.Equal(t, http.StatusOK, rec.Code, path)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "healthy", response.Status)
			assert.Equal(t, map[string]string{"postgres": "healthy"}, response.Dependencies)
		}

		assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
	})

	t.Run("failing dependency answers 503", func(t *testing.T) {
		e := echo.New()
		service := NewService("xpend-api")
		service.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
		service.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))
		RegisterHealthEndpoints(e, "", service)

		rec := serve(e, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var response Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "healthy", response.Dependencies["postgres"])
		assert.Contains(t, response.Dependencies["redis"], "connection refused")

		// liveness does not depend on collaborators
		assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
	})
}

func TestPingHandler(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "1.2.3", NewService("xpend-api"))

	rec := serve(e, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "xpend-api", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestNilClientsSkipChecks(t *testing.T) {
	assert.Nil(t, NewPostgresHealthChecker(nil))
	assert.Nil(t, NewRedisHealthChecker(nil))
	assert.Nil(t, NewNATSHealthChecker(nil))
}
