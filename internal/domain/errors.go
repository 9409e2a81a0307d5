package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptyCSV           = errors.New("csv input is empty")
	ErrNoRows             = errors.New("csv contained no data rows")
	ErrNoAmountColumn     = errors.New("csv has no amount column")
	ErrPromptRequired     = errors.New("prompt is required")
	ErrSessionNotFound    = errors.New("session not found")
	ErrAdvisorUnavailable = errors.New("advisor service unavailable")
)
