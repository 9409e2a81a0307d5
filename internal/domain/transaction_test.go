package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		txnType  TransactionType
		expected string
	}{
		{"income type", TransactionTypeIncome, "income"},
		{"expense type", TransactionTypeExpense, "expense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.txnType) != tt.expected {
				t.Errorf("TransactionType constant %s = %s, want %s", tt.name, tt.txnType, tt.expected)
			}
		})
	}
}

func TestTransactionIsIncome(t *testing.T) {
	tests := []struct {
		name     string
		txn      Transaction
		expected bool
	}{
		{"explicit income type wins", Transaction{Amount: decimal.NewFromInt(-10), Type: TransactionTypeIncome}, true},
		{"positive amount counts as income", Transaction{Amount: decimal.NewFromInt(500)}, true},
		{"negative amount is an expense", Transaction{Amount: decimal.NewFromInt(-50)}, false},
		{"zero amount is not income", Transaction{Amount: decimal.Zero}, false},
		{"explicit expense type with positive amount stays income by sign", Transaction{Amount: decimal.NewFromInt(25), Type: TransactionTypeExpense}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.txn.IsIncome(); got != tt.expected {
				t.Errorf("IsIncome() = %v, want %v", got, tt.expected)
			}
		})
	}
}
