package handler

import (
	"net/http"
	"strconv"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// MaxForecastMonths bounds the requested forecast horizon.
const MaxForecastMonths = 60

// InsightHandler handles analytics HTTP requests
type InsightHandler struct {
	analysisService *service.AnalysisService
	alertService    *service.AlertService
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(analysisService *service.AnalysisService, alertService *service.AlertService) *InsightHandler {
	return &InsightHandler{
		analysisService: analysisService,
		alertService:    alertService,
	}
}

// TransactionsRequest is the shared request body for analytics endpoints
type TransactionsRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// SummaryResponse represents the dataset summary API response
type SummaryResponse struct {
	TotalTxns    int               `json:"totalTxns"`
	NetTotal     string            `json:"netTotal"`
	AvgAmount    string            `json:"avgAmount"`
	IncomeTotal  string            `json:"incomeTotal"`
	ExpenseTotal string            `json:"expenseTotal"`
	ByCategory   map[string]string `json:"byCategory"`
}

// MonthBucketResponse represents one month's aggregates in API responses
type MonthBucketResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// ForecastResponse represents the savings forecast API response
type ForecastResponse struct {
	AvgMonthlyNet string                  `json:"avgMonthlyNet"`
	Forecast      []ForecastPointResponse `json:"forecast"`
}

// ForecastPointResponse is a single projected month
type ForecastPointResponse struct {
	Month            int    `json:"month"`
	EstimatedSavings string `json:"estimatedSavings"`
}

// Analyze handles POST /api/v1/insights/analyze
func (h *InsightHandler) Analyze(c echo.Context) error {
	var req TransactionsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	summary := h.analysisService.Analyze(req.Transactions)

	byCategory := make(map[string]string, len(summary.ByCategory))
	for cat, sum := range summary.ByCategory {
		byCategory[cat] = sum.StringFixed(2)
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		TotalTxns:    summary.TotalTxns,
		NetTotal:     summary.NetTotal.StringFixed(2),
		AvgAmount:    summary.AvgAmount.StringFixed(2),
		IncomeTotal:  summary.IncomeTotal.StringFixed(2),
		ExpenseTotal: summary.ExpenseTotal.StringFixed(2),
		ByCategory:   byCategory,
	})
}

// Monthly handles POST /api/v1/insights/monthly
func (h *InsightHandler) Monthly(c echo.Context) error {
	var req TransactionsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	buckets := h.analysisService.GroupByMonth(req.Transactions)

	months := make([]MonthBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, toMonthBucketResponse(bucket))
	}

	return c.JSON(http.StatusOK, map[string][]MonthBucketResponse{"months": months})
}

// Forecast handles POST /api/v1/insights/forecast?months=N
func (h *InsightHandler) Forecast(c echo.Context) error {
	var req TransactionsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	months := 3
	if monthsStr := c.QueryParam("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			return NewValidationError(c, "Invalid months format", []ValidationError{{Field: "months", Message: "Must be a valid integer"}})
		}
		if parsed < 0 || parsed > MaxForecastMonths {
			return NewValidationError(c, "Months out of range", []ValidationError{{Field: "months", Message: "Must be between 0 and 60"}})
		}
		months = parsed
	}

	forecast := h.analysisService.ForecastSavings(req.Transactions, months)

	points := make([]ForecastPointResponse, 0, len(forecast.Points))
	for _, p := range forecast.Points {
		points = append(points, ForecastPointResponse{
			Month:            p.Month,
			EstimatedSavings: p.EstimatedSavings.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, ForecastResponse{
		AvgMonthlyNet: forecast.AvgMonthlyNet.StringFixed(2),
		Forecast:      points,
	})
}

// Alerts handles POST /api/v1/insights/alerts
func (h *InsightHandler) Alerts(c echo.Context) error {
	var req TransactionsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	alerts := h.alertService.ComputeAlerts(req.Transactions)
	return c.JSON(http.StatusOK, map[string][]string{"alerts": alerts})
}

func toMonthBucketResponse(bucket domain.MonthBucket) MonthBucketResponse {
	return MonthBucketResponse{
		Month:    bucket.Month,
		Income:   bucket.Income.StringFixed(2),
		Expenses: bucket.Expenses.StringFixed(2),
		Net:      bucket.Net.StringFixed(2),
	}
}
