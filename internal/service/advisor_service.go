package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finwise/finwise-backend/internal/domain"
)

// AdvisorService orchestrates a chat turn: it snapshots the dataset, embeds
// the snapshot plus a bounded slice of raw records into the request, and
// forwards the user prompt to the external AI collaborator.
type AdvisorService struct {
	contextService *ContextService
	memory         *MemoryService
	client         domain.AdvisorClient
}

// NewAdvisorService creates a new AdvisorService
func NewAdvisorService(contextService *ContextService, memory *MemoryService, client domain.AdvisorClient) *AdvisorService {
	return &AdvisorService{
		contextService: contextService,
		memory:         memory,
		client:         client,
	}
}

// ChatResult is the outcome of one advisor turn.
type ChatResult struct {
	SessionID string
	Reply     string
}

// Chat answers a user prompt grounded in their transaction data. When the
// request carries no transactions, the session's remembered dataset is used.
func (s *AdvisorService) Chat(ctx context.Context, sessionID, prompt string, transactions []domain.Transaction) (*ChatResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrPromptRequired
	}

	mem := s.memory.GetOrCreate(sessionID)
	if len(transactions) == 0 {
		transactions = mem.Transactions
	} else {
		s.memory.RememberTransactions(mem.SessionID, transactions)
	}

	snapshot := s.contextService.BuildSnapshot(transactions)
	userPrompt, err := buildPrompt(prompt, snapshot, transactions, mem.Notes)
	if err != nil {
		return nil, err
	}

	reply, err := s.client.Generate(ctx, snapshot.Guidance, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}

	return &ChatResult{SessionID: mem.SessionID, Reply: reply}, nil
}

// buildPrompt embeds the snapshot, capped raw records and session notes into
// a single prompt body around the user's question.
func buildPrompt(prompt string, snapshot *domain.Snapshot, transactions []domain.Transaction, notes []string) (string, error) {
	if len(transactions) > domain.MaxChatRecords {
		transactions = transactions[:domain.MaxChatRecords]
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	recordsJSON, err := json.Marshal(transactions)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Financial context:\n")
	b.Write(snapshotJSON)
	b.WriteString("\n\nRaw transactions:\n")
	b.Write(recordsJSON)
	if len(notes) > 0 {
		b.WriteString("\n\nUser notes:\n- ")
		b.WriteString(strings.Join(notes, "\n- "))
	}
	b.WriteString("\n\nUser question: ")
	b.WriteString(prompt)
	return b.String(), nil
}
