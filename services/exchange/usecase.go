package exchange

import (
	"context"
	"io"

	"github.com/piresc/xpend/internal/pkg/export"
	"github.com/piresc/xpend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/xpend/services/exchange ExchangeUC

// ExchangeUC defines the export and import operations
type ExchangeUC interface {
	ExportCSV(ctx context.Context, userID string, w io.Writer) error
	ExportJSON(ctx context.Context, userID string) (*models.ExportData, error)
	Import(ctx context.Context, userID string, format export.Format, r io.Reader) (*models.ImportResult, error)
}
