package domain

import (
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is one ingested financial event. Date is kept as the raw string
// supplied by the upstream parser; components that need a calendar month parse
// it themselves and skip records whose date does not parse.
type Transaction struct {
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Type        TransactionType `json:"type,omitempty"`
}

// IsIncome decides the income/expense classification once for every consumer:
// an explicit "income" type wins, otherwise a positive amount counts as income.
func (t *Transaction) IsIncome() bool {
	if t.Type == TransactionTypeIncome {
		return true
	}
	return t.Amount.IsPositive()
}

// Caps applied when handing data to the external AI collaborator.
const (
	MaxSnapshotSamples = 50
	MaxChatRecords     = 200
)
