package testutil

import (
	"context"
	"errors"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockAdvisorClient is a mock implementation of domain.AdvisorClient
type MockAdvisorClient struct {
	Reply      string
	Err        error
	Calls      int
	LastSystem string
	LastPrompt string
	GenerateFn func(ctx context.Context, instruction, prompt string) (string, error)
}

// NewMockAdvisorClient creates a MockAdvisorClient with a canned reply
func NewMockAdvisorClient(reply string) *MockAdvisorClient {
	return &MockAdvisorClient{Reply: reply}
}

// Generate implements domain.AdvisorClient
func (m *MockAdvisorClient) Generate(ctx context.Context, instruction, prompt string) (string, error) {
	m.Calls++
	m.LastSystem = instruction
	m.LastPrompt = prompt
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, instruction, prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

// ErrAdvisorDown simulates an unreachable AI service
var ErrAdvisorDown = errors.New("advisor down")

// Txn builds a transaction from a date, amount and description
func Txn(date string, amount float64, description string) domain.Transaction {
	return domain.Transaction{
		Date:        date,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
	}
}

// IncomeTxn builds a transaction with an explicit income type
func IncomeTxn(date string, amount float64) domain.Transaction {
	return domain.Transaction{
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Type:   domain.TransactionTypeIncome,
	}
}

// CategorizedTxn builds a transaction with an explicit category
func CategorizedTxn(date string, amount float64, category string) domain.Transaction {
	return domain.Transaction{
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
	}
}
