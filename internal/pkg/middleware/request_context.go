package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
)

// RequestContextMiddleware assigns a request id and copies it, with the
// service name, into the request context.Context
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := requestcontext.RequestIDFromEcho(c)

			ctx := requestcontext.WithRequestID(c.Request().Context(), requestID)
			ctx = requestcontext.WithServiceName(ctx, serviceName)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			return next(c)
		}
	}
}
