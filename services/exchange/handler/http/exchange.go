package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/export"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/internal/utils"
	"github.com/piresc/xpend/services/exchange"
)

// maxImportBytes caps the size of an uploaded import file
const maxImportBytes = 10 << 20

const (
	csvFileName  = "xpend-transactions.csv"
	jsonFileName = "xpend-data.json"
)

// importFailure reports what was written before an import failed
type importFailure struct {
	utils.ErrorResponse
	Imported *models.ImportResult `json:"imported"`
}

// ExchangeHandler handles export and import
type ExchangeHandler struct {
	exchangeUC exchange.ExchangeUC
}

// NewExchangeHandler creates a new export/import handler
func NewExchangeHandler(exchangeUC exchange.ExchangeUC) *ExchangeHandler {
	return &ExchangeHandler{exchangeUC: exchangeUC}
}

// ExportCSV handles GET /export/csv
func (h *ExchangeHandler) ExportCSV(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.exchangeUC.ExportCSV(c.Request().Context(), requestcontext.UserIDFromEcho(c), &buf); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	attachment(c, csvFileName)
	return c.Blob(http.StatusOK, "text/csv; charset=UTF-8", buf.Bytes())
}

// ExportJSON handles GET /export/json
func (h *ExchangeHandler) ExportJSON(c echo.Context) error {
	data, err := h.exchangeUC.ExportJSON(c.Request().Context(), requestcontext.UserIDFromEcho(c))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, *data); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	attachment(c, jsonFileName)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, buf.Bytes())
}

// Import handles POST /import. The file comes either as the multipart field
// "file" or as the raw request body; its name or content type picks the format.
func (h *ExchangeHandler) Import(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	var (
		body   io.Reader
		format export.Format
		err    error
	)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		fh, ferr := c.FormFile("file")
		if ferr != nil {
			return utils.BadRequestResponse(c, "file is required")
		}
		format, err = export.FormatFromName(fh.Filename, fh.Header.Get(echo.HeaderContentType))
		if err != nil {
			return utils.ErrorFromDomain(c, err)
		}
		file, ferr := fh.Open()
		if ferr != nil {
			return utils.BadRequestResponse(c, "file could not be read")
		}
		defer file.Close()
		body = file
	} else {
		format, err = export.FormatFromName(c.QueryParam("filename"), contentType)
		if err != nil {
			return utils.ErrorFromDomain(c, err)
		}
		body = c.Request().Body
	}

	result, err := h.exchangeUC.Import(c.Request().Context(), requestcontext.UserIDFromEcho(c), format, io.LimitReader(body, maxImportBytes))
	if err != nil {
		if result == nil {
			return utils.ErrorFromDomain(c, err)
		}
		status := utils.StatusFromError(err)
		return c.JSON(status, importFailure{
			ErrorResponse: utils.ErrorResponse{
				Success: false,
				Message: fmt.Sprintf("Import stopped after %d transactions and %d budgets", result.Transactions, result.Budgets),
				Code:    status,
			},
			Imported: result,
		})
	}
	return c.JSON(http.StatusOK, result)
}

func attachment(c echo.Context, name string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
}
