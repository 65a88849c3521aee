package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/internal/utils"
)

const maxSeriesMonths = 120

// Summary handles GET /summary
func (h *TransactionHandler) Summary(c echo.Context) error {
	summary, err := h.txnUC.Summary(c.Request().Context(), requestcontext.UserIDFromEcho(c))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// MonthlySeries handles GET /summary/monthly?months=6&ref=YYYY-MM-DD
func (h *TransactionHandler) MonthlySeries(c echo.Context) error {
	var months int
	if raw := c.QueryParam("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSeriesMonths {
			return utils.BadRequestResponse(c, "months must be an integer between 1 and 120")
		}
		months = n
	}

	var ref time.Time
	if raw := c.QueryParam("ref"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "ref must be a date in YYYY-MM-DD format")
		}
		ref = d.Time
	}

	series, err := h.txnUC.MonthlySeries(c.Request().Context(), requestcontext.UserIDFromEcho(c), months, ref)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, series)
}

// CategoryBreakdown handles GET /summary/categories
func (h *TransactionHandler) CategoryBreakdown(c echo.Context) error {
	breakdown, err := h.txnUC.CategoryBreakdown(c.Request().Context(), requestcontext.UserIDFromEcho(c))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, breakdown)
}
