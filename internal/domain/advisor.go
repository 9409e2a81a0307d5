package domain

import "context"

// AdvisorClient is the external conversational AI collaborator. The core only
// knows this contract; transport lives in internal/repository.
type AdvisorClient interface {
	// Generate sends a system instruction plus a user prompt and returns the
	// model's text reply.
	Generate(ctx context.Context, instruction, prompt string) (string, error)
}
