package handler

import (
	"net/http"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PlanHandler handles budget and goal planning HTTP requests
type PlanHandler struct {
	plannerService *service.PlannerService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(plannerService *service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// BudgetRequest is the request body for budget suggestions
type BudgetRequest struct {
	Transactions  []domain.Transaction `json:"transactions"`
	TargetSavings decimal.Decimal      `json:"targetSavings"`
}

// BudgetSuggestionResponse is a single suggested category cut
type BudgetSuggestionResponse struct {
	Category          string `json:"category"`
	CurrentSpend      string `json:"currentSpend"`
	SuggestedCut      string `json:"suggestedCut"`
	NewEstimatedSpend string `json:"newEstimatedSpend"`
}

// BudgetPlanResponse represents the budget plan API response
type BudgetPlanResponse struct {
	CurrentSavings string                     `json:"currentSavings"`
	TargetSavings  string                     `json:"targetSavings"`
	NeededToSave   string                     `json:"neededToSave"`
	Suggestions    []BudgetSuggestionResponse `json:"suggestions"`
}

// SuggestBudget handles POST /api/v1/plans/budget
func (h *PlanHandler) SuggestBudget(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.TargetSavings.IsNegative() {
		return NewValidationError(c, "Target savings must not be negative", []ValidationError{{Field: "targetSavings", Message: "Must be zero or positive"}})
	}

	plan := h.plannerService.SuggestBudget(req.Transactions, req.TargetSavings)

	suggestions := make([]BudgetSuggestionResponse, 0, len(plan.Suggestions))
	for _, s := range plan.Suggestions {
		suggestions = append(suggestions, BudgetSuggestionResponse{
			Category:          s.Category,
			CurrentSpend:      s.CurrentSpend.StringFixed(2),
			SuggestedCut:      s.SuggestedCut.StringFixed(2),
			NewEstimatedSpend: s.NewEstimatedSpend.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, BudgetPlanResponse{
		CurrentSavings: plan.CurrentSavings.StringFixed(2),
		TargetSavings:  plan.TargetSavings.StringFixed(2),
		NeededToSave:   plan.NeededToSave.StringFixed(2),
		Suggestions:    suggestions,
	})
}

// GoalRequest is the request body for goal plans
type GoalRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
	GoalAmount   decimal.Decimal      `json:"goalAmount"`
	Months       int                  `json:"months"`
}

// GoalTipResponse is a single category cut tip
type GoalTipResponse struct {
	Category       string `json:"category"`
	CurrentMonthly string `json:"currentMonthly"`
	SuggestedCut   string `json:"suggestedCut"`
}

// GoalPlanResponse represents the goal plan API response
type GoalPlanResponse struct {
	GoalAmount    string            `json:"goalAmount"`
	Months        int               `json:"months"`
	MonthlyTarget string            `json:"monthlyTarget"`
	WeeklyTarget  string            `json:"weeklyTarget"`
	Tips          []GoalTipResponse `json:"tips"`
}

// GenerateGoalPlan handles POST /api/v1/plans/goal
func (h *PlanHandler) GenerateGoalPlan(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	plan := h.plannerService.GenerateGoalPlan(req.Transactions, req.GoalAmount, req.Months)

	tips := make([]GoalTipResponse, 0, len(plan.Tips))
	for _, tip := range plan.Tips {
		tips = append(tips, GoalTipResponse{
			Category:       tip.Category,
			CurrentMonthly: tip.CurrentMonthly.StringFixed(2),
			SuggestedCut:   tip.SuggestedCut.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, GoalPlanResponse{
		GoalAmount:    plan.GoalAmount.StringFixed(2),
		Months:        plan.Months,
		MonthlyTarget: plan.MonthlyTarget.StringFixed(2),
		WeeklyTarget:  plan.WeeklyTarget.StringFixed(2),
		Tips:          tips,
	})
}
