package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/services/transactions/handler/http"
)

// Handler coordinates the HTTP handlers of the transactions service
type Handler struct {
	txnHandler *http.TransactionHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(txnHandler *http.TransactionHandler) *Handler {
	return &Handler{txnHandler: txnHandler}
}

// RegisterRoutes mounts the ledger and dashboard routes behind jwtMiddleware
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	txnGroup := e.Group("/transactions", jwtMiddleware)
	txnGroup.GET("", h.txnHandler.ListTransactions)
	txnGroup.GET("/recent", h.txnHandler.RecentTransactions)
	txnGroup.POST("", h.txnHandler.CreateTransaction)
	txnGroup.PUT("/:id", h.txnHandler.UpdateTransaction)
	txnGroup.DELETE("/:id", h.txnHandler.DeleteTransaction)

	summaryGroup := e.Group("/summary", jwtMiddleware)
	summaryGroup.GET("", h.txnHandler.Summary)
	summaryGroup.GET("/monthly", h.txnHandler.MonthlySeries)
	summaryGroup.GET("/categories", h.txnHandler.CategoryBreakdown)
}
