package handler

import (
	"errors"
	"net/http"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles advisor chat and session memory HTTP requests
type ChatHandler struct {
	advisorService *service.AdvisorService
	memoryService  *service.MemoryService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(advisorService *service.AdvisorService, memoryService *service.MemoryService) *ChatHandler {
	return &ChatHandler{
		advisorService: advisorService,
		memoryService:  memoryService,
	}
}

// ChatRequest is the request body for an advisor turn
type ChatRequest struct {
	SessionID    string               `json:"sessionId,omitempty"`
	Prompt       string               `json:"prompt"`
	Transactions []domain.Transaction `json:"transactions,omitempty"`
}

// ChatResponse represents the advisor reply
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.advisorService.Chat(c.Request().Context(), req.SessionID, req.Prompt, req.Transactions)
	if err != nil {
		if errors.Is(err, domain.ErrPromptRequired) {
			return NewValidationError(c, "Prompt is required", []ValidationError{{Field: "prompt", Message: "Must not be empty"}})
		}
		if errors.Is(err, domain.ErrAdvisorUnavailable) {
			log.Error().Err(err).Msg("Advisor service unavailable")
			return NewUnavailableError(c, "The AI advisor is currently unavailable. Please try again later.")
		}
		log.Error().Err(err).Msg("Chat failed")
		return NewInternalError(c, "Failed to process chat request")
	}

	return c.JSON(http.StatusOK, ChatResponse{
		SessionID: result.SessionID,
		Reply:     result.Reply,
	})
}

// MemoryResponse reports what a session currently remembers
type MemoryResponse struct {
	SessionID       string   `json:"sessionId"`
	HasTransactions bool     `json:"hasTransactions"`
	Count           int      `json:"count"`
	Notes           []string `json:"notes"`
}

// GetMemory handles GET /api/v1/sessions/:id/memory
func (h *ChatHandler) GetMemory(c echo.Context) error {
	mem, err := h.memoryService.Get(c.Param("id"))
	if err != nil {
		return NewNotFoundError(c, "Session not found")
	}

	notes := mem.Notes
	if notes == nil {
		notes = []string{}
	}
	return c.JSON(http.StatusOK, MemoryResponse{
		SessionID:       mem.SessionID,
		HasTransactions: len(mem.Transactions) > 0,
		Count:           len(mem.Transactions),
		Notes:           notes,
	})
}

// NoteRequest is the request body for remembering a note
type NoteRequest struct {
	Note string `json:"note"`
}

// AddNote handles POST /api/v1/sessions/:id/notes
func (h *ChatHandler) AddNote(c echo.Context) error {
	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	mem, err := h.memoryService.AddNote(c.Param("id"), req.Note)
	if err != nil {
		return NewValidationError(c, "Note must not be empty", []ValidationError{{Field: "note", Message: "Must not be empty"}})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessionId":  mem.SessionID,
		"notesCount": len(mem.Notes),
	})
}

// ClearMemory handles DELETE /api/v1/sessions/:id/memory
func (h *ChatHandler) ClearMemory(c echo.Context) error {
	h.memoryService.Clear(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
