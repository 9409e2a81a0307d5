package service

import (
	"sort"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// cutFraction caps every suggested reduction at 10% of a category's spend.
	cutFraction = decimal.NewFromFloat(0.10)
	// weeksPerMonth is a fixed approximation, not calendar-accurate.
	weeksPerMonth = decimal.NewFromInt(4)
	// goalTipLimit caps goal-plan tips to the top expense categories.
	goalTipLimit = 5
)

// PlannerService proposes budget cuts and savings-goal plans from aggregate
// category spending.
type PlannerService struct {
	analysis *AnalysisService
}

// NewPlannerService creates a new PlannerService
func NewPlannerService(analysis *AnalysisService) *PlannerService {
	return &PlannerService{analysis: analysis}
}

// SuggestBudget proposes per-category cuts to close the gap between current
// and target savings. Cuts are allocated greedily, biggest expense category
// first, and never exceed 10% of a category's own spend; any unmet need is
// left unmet.
func (s *PlannerService) SuggestBudget(transactions []domain.Transaction, targetSavings decimal.Decimal) *domain.BudgetPlan {
	summary := s.analysis.Analyze(transactions)

	currentSavings := summary.IncomeTotal.Sub(summary.ExpenseTotal)
	if currentSavings.IsNegative() {
		currentSavings = decimal.Zero
	}
	needed := targetSavings.Sub(currentSavings)
	if needed.IsNegative() {
		needed = decimal.Zero
	}

	plan := &domain.BudgetPlan{
		CurrentSavings: currentSavings,
		TargetSavings:  targetSavings,
		NeededToSave:   needed,
		Suggestions:    []domain.BudgetSuggestion{},
	}

	remaining := needed
	for _, candidate := range expenseCategories(summary) {
		if !remaining.IsPositive() {
			break
		}
		spend := candidate.sum.Abs()
		cut := spend.Mul(cutFraction)
		if cut.GreaterThan(remaining) {
			cut = remaining
		}
		plan.Suggestions = append(plan.Suggestions, domain.BudgetSuggestion{
			Category:          candidate.category,
			CurrentSpend:      spend,
			SuggestedCut:      cut,
			NewEstimatedSpend: spend.Sub(cut),
		})
		remaining = remaining.Sub(cut)
	}
	return plan
}

// GenerateGoalPlan derives monthly and weekly savings targets for a goal and
// proposes category cuts towards the monthly target. Non-positive inputs
// degrade to a zero plan with no tips.
func (s *PlannerService) GenerateGoalPlan(transactions []domain.Transaction, goalAmount decimal.Decimal, months int) *domain.GoalPlan {
	if months <= 0 || !goalAmount.IsPositive() {
		return &domain.GoalPlan{Tips: []domain.GoalTip{}}
	}

	monthsDec := decimal.NewFromInt(int64(months))
	plan := &domain.GoalPlan{
		GoalAmount:    goalAmount,
		Months:        months,
		MonthlyTarget: goalAmount.Div(monthsDec),
		WeeklyTarget:  goalAmount.Div(monthsDec.Mul(weeksPerMonth)),
		Tips:          []domain.GoalTip{},
	}

	summary := s.analysis.Analyze(transactions)
	candidates := expenseCategories(summary)
	if len(candidates) > goalTipLimit {
		candidates = candidates[:goalTipLimit]
	}

	remaining := plan.MonthlyTarget
	for _, candidate := range candidates {
		if !remaining.IsPositive() {
			break
		}
		spend := candidate.sum.Abs()
		cut := spend.Mul(cutFraction)
		if cut.GreaterThan(remaining) {
			cut = remaining
		}
		plan.Tips = append(plan.Tips, domain.GoalTip{
			Category:       candidate.category,
			CurrentMonthly: spend,
			SuggestedCut:   cut,
		})
		remaining = remaining.Sub(cut)
	}
	return plan
}

type expenseCategory struct {
	category string
	sum      decimal.Decimal
}

// expenseCategories returns categories with negative signed sums, most
// negative first. Ties break on name so output order is deterministic.
func expenseCategories(summary *domain.Summary) []expenseCategory {
	var candidates []expenseCategory
	for cat, sum := range summary.ByCategory {
		if sum.IsNegative() {
			candidates = append(candidates, expenseCategory{category: cat, sum: sum})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sum.Equal(candidates[j].sum) {
			return candidates[i].category < candidates[j].category
		}
		return candidates[i].sum.LessThan(candidates[j].sum)
	})
	return candidates
}
