package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/internal/utils"
	"github.com/piresc/xpend/services/budgets"
)

// BudgetHandler handles the budget endpoints
type BudgetHandler struct {
	budgetUC budgets.BudgetUC
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetUC budgets.BudgetUC) *BudgetHandler {
	return &BudgetHandler{budgetUC: budgetUC}
}

// ListBudgets handles GET /budgets
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	views, err := h.budgetUC.ListBudgets(c.Request().Context(), requestcontext.UserIDFromEcho(c))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateBudget handles POST /budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req models.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.budgetUC.CreateBudget(c.Request().Context(), requestcontext.UserIDFromEcho(c), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateBudget handles PUT /budgets/:id
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	var req models.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.budgetUC.UpdateBudget(c.Request().Context(), requestcontext.UserIDFromEcho(c), c.Param("id"), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteBudget handles DELETE /budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	if err := h.budgetUC.DeleteBudget(c.Request().Context(), requestcontext.UserIDFromEcho(c), c.Param("id")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Budget deleted")
}
