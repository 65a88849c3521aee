package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/internal/utils"
	"github.com/piresc/xpend/services/transactions"
)

// TransactionHandler handles the ledger endpoints
type TransactionHandler struct {
	txnUC transactions.TransactionUC
}

// NewTransactionHandler creates a new ledger handler
func NewTransactionHandler(txnUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{txnUC: txnUC}
}

// ListTransactions handles GET /transactions
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	txns, err := h.txnUC.ListTransactions(c.Request().Context(), requestcontext.UserIDFromEcho(c))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, txns)
}

// RecentTransactions handles GET /transactions/recent?limit=N. A missing or
// malformed limit falls back to the default.
func (h *TransactionHandler) RecentTransactions(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	txns, err := h.txnUC.RecentTransactions(c.Request().Context(), requestcontext.UserIDFromEcho(c), limit)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, txns)
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateTransaction"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.txnUC.CreateTransaction(c.Request().Context(), requestcontext.UserIDFromEcho(c), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, txn)
}

// UpdateTransaction handles PUT /transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	var req models.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.txnUC.UpdateTransaction(c.Request().Context(), requestcontext.UserIDFromEcho(c), c.Param("id"), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, txn)
}

// DeleteTransaction handles DELETE /transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	if err := h.txnUC.DeleteTransaction(c.Request().Context(), requestcontext.UserIDFromEcho(c), c.Param("id")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted")
}
