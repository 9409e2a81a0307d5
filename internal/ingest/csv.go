// Package ingest parses delimited text into the canonical transaction shape.
// All input tolerance (header aliases, lenient numbers) lives here so the
// analytics core only ever sees normalized records.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// headerAliases maps accepted column names (lower-cased) to canonical fields.
var headerAliases = map[string]string{
	"date":             "date",
	"transaction_date": "date",
	"transactiondate":  "date",
	"posted":           "date",
	"description":      "description",
	"desc":             "description",
	"memo":             "description",
	"name":             "description",
	"details":          "description",
	"amount":           "amount",
	"value":            "amount",
	"sum":              "amount",
	"category":         "category",
	"cat":              "category",
	"type":             "type",
	"transaction_type": "type",
}

// ParseCSV reads transactions from CSV content. The first row is treated as a
// header; column matching is case-insensitive and tolerant of common aliases.
// An amount column is required, everything else is optional.
func ParseCSV(r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.ErrEmptyCSV
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if field, ok := headerAliases[key]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = i
			}
		}
	}
	if _, ok := columns["amount"]; !ok {
		return nil, domain.ErrNoAmountColumn
	}

	var transactions []domain.Transaction
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Ragged or malformed rows are skipped, not fatal.
				continue
			}
			return nil, err
		}
		if isBlank(row) {
			continue
		}

		amount := ParseAmount(field(row, columns, "amount"))
		t := domain.Transaction{
			Date:        field(row, columns, "date"),
			Description: field(row, columns, "description"),
			Amount:      amount,
			Category:    field(row, columns, "category"),
			Type:        normalizeType(field(row, columns, "type"), amount),
		}
		transactions = append(transactions, t)
	}

	if len(transactions) == 0 {
		return nil, domain.ErrNoRows
	}
	return transactions, nil
}

// ParseAmount parses a numeric-looking string leniently: currency symbols,
// thousands separators and other noise are stripped before parsing, and
// anything still unparsable resolves to zero.
func ParseAmount(value string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// normalizeType lower-cases an explicit type, deriving one from the amount
// sign when the column is blank. Zero amounts stay untyped.
func normalizeType(value string, amount decimal.Decimal) domain.TransactionType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(domain.TransactionTypeIncome):
		return domain.TransactionTypeIncome
	case string(domain.TransactionTypeExpense):
		return domain.TransactionTypeExpense
	}
	if amount.IsPositive() {
		return domain.TransactionTypeIncome
	}
	if amount.IsNegative() {
		return domain.TransactionTypeExpense
	}
	return ""
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
