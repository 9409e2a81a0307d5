package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/ingest"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// UploadHandler handles CSV ingestion HTTP requests
type UploadHandler struct{}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// UploadRequest carries raw CSV text when no multipart file is sent
type UploadRequest struct {
	CSVText string `json:"csvText"`
}

// UploadResponse returns the parsed, normalized records
type UploadResponse struct {
	Count        int                  `json:"count"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Upload handles POST /api/v1/transactions/upload. It accepts either a
// multipart file field named "file" or a JSON body with raw csvText.
func (h *UploadHandler) Upload(c echo.Context) error {
	transactions, err := h.readTransactions(c)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCSV),
			errors.Is(err, domain.ErrNoRows),
			errors.Is(err, domain.ErrNoAmountColumn),
			errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, err.Error(), nil)
		default:
			log.Error().Err(err).Msg("Failed to parse uploaded CSV")
			return NewInternalError(c, "Failed to parse uploaded file")
		}
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Count:        len(transactions),
		Transactions: transactions,
	})
}

func (h *UploadHandler) readTransactions(c echo.Context) ([]domain.Transaction, error) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return ingest.ParseCSV(src)
	}

	var req UploadRequest
	if err := c.Bind(&req); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(req.CSVText) == "" {
		return nil, domain.ErrEmptyCSV
	}
	return ingest.ParseCSV(strings.NewReader(req.CSVText))
}
