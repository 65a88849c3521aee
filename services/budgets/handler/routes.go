package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/services/budgets/handler/http"
)

// Handler coordinates the HTTP handlers of the budgets service
type Handler struct {
	budgetHandler *http.BudgetHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(budgetHandler *http.BudgetHandler) *Handler {
	return &Handler{budgetHandler: budgetHandler}
}

// RegisterRoutes mounts the budget routes behind jwtMiddleware
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	budgetGroup := e.Group("/budgets", jwtMiddleware)
	budgetGroup.GET("", h.budgetHandler.ListBudgets)
	budgetGroup.POST("", h.budgetHandler.CreateBudget)
	budgetGroup.PUT("/:id", h.budgetHandler.UpdateBudget)
	budgetGroup.DELETE("/:id", h.budgetHandler.DeleteBudget)
}
