package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/services/exchange/handler/http"
)

// Handler coordinates the HTTP handlers of the exchange service
type Handler struct {
	exchangeHandler *http.ExchangeHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(exchangeHandler *http.ExchangeHandler) *Handler {
	return &Handler{exchangeHandler: exchangeHandler}
}

// RegisterRoutes mounts the export and import routes behind jwtMiddleware
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	exportGroup := e.Group("/export", jwtMiddleware)
	exportGroup.GET("/csv", h.exchangeHandler.ExportCSV)
	exportGroup.GET("/json", h.exchangeHandler.ExportJSON)

	e.POST("/import", h.exchangeHandler.Import, jwtMiddleware)
}
