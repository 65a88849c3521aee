package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
)

// ZapEchoMiddleware writes one access log line per request
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			statusCode := c.Response().Status

			// the auth middleware runs after us and stores the user on c
			userID := "anonymous"
			if uid, ok := c.Get(requestcontext.EchoUserIDKey).(string); ok && uid != "" {
				userID = uid
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, req.Method, path, c.RealIP(), userID, requestID, statusCode, latency, err)
			return nil
		}
	}
}
