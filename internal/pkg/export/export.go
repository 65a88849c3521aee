// Package export encodes a user's ledger and budgets to CSV or JSON and
// parses them back into the same shapes.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

// Format identifies an export encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Header is the first CSV row
var Header = []string{"Date", "Description", "Category", "Amount", "Payment Method"}

// FormatFromName picks a format from a file name or content type
func FormatFromName(name, contentType string) (Format, error) {
	name = strings.ToLower(name)
	contentType = strings.ToLower(contentType)
	switch {
	case strings.HasSuffix(name, ".csv"), strings.Contains(contentType, "text/csv"):
		return FormatCSV, nil
	case strings.HasSuffix(name, ".json"), strings.Contains(contentType, "application/json"):
		return FormatJSON, nil
	}
	return "", apperrors.New(apperrors.ErrValidation, "unsupported import format: use a .csv or .json file")
}

// FormatAmount renders amount in its shortest exact decimal form
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// WriteCSV writes the header row followed by one row per transaction
func WriteCSV(w io.Writer, txns []*models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txns {
		row := []string{t.Date.String(), t.Description, t.Category, FormatAmount(t.Amount), t.PaymentMethod}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows written by WriteCSV. Columns are located by header name
// so a reordered file still imports.
func ReadCSV(r io.Reader) ([]*models.Transaction, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.New(apperrors.ErrValidation, "csv file is empty")
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrValidation, "malformed csv: %v", err)
	}

	index := make(map[string]int, len(head))
	for i, col := range head {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))] = i
	}
	for _, col := range Header {
		if _, ok := index[strings.ToLower(col)]; !ok {
			return nil, apperrors.Newf(apperrors.ErrValidation, "csv header is missing column %q", col)
		}
	}
	cr.FieldsPerRecord = len(head)

	txns := []*models.Transaction{}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrValidation, "malformed csv at line %d: %v", line, err)
		}
		field := func(name string) string {
			return record[index[strings.ToLower(name)]]
		}

		date, err := models.ParseDate(field("Date"))
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrValidation, "line %d: %v", line, err)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(field("Amount")), 64)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrValidation, "line %d: invalid amount %q", line, field("Amount"))
		}
		txns = append(txns, &models.Transaction{
			Date:          date,
			Description:   field("Description"),
			Category:      field("Category"),
			Amount:        amount,
			PaymentMethod: field("Payment Method"),
		})
	}
	return txns, nil
}

// WriteJSON writes data as an indented JSON document
func WriteJSON(w io.Writer, data models.ExportData) error {
	if data.Transactions == nil {
		data.Transactions = []*models.Transaction{}
	}
	if data.Budgets == nil {
		data.Budgets = []models.BudgetView{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ReadJSON parses a document written by WriteJSON
func ReadJSON(r io.Reader) (models.ExportData, error) {
	var data models.ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return models.ExportData{}, apperrors.Newf(apperrors.ErrValidation, "malformed json: %v", err)
	}
	return data, nil
}
