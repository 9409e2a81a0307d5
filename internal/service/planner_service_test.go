package service

import (
	"testing"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlannerService() *PlannerService {
	return NewPlannerService(NewAnalysisService())
}

func sampleSpending() []domain.Transaction {
	return []domain.Transaction{
		testutil.IncomeTxn("2024-01-01", 3000),
		testutil.Txn("2024-01-02", -1200, "Rent payment"),
		testutil.Txn("2024-01-05", -400, "restaurant dinners"),
		testutil.Txn("2024-01-08", -150, "uber rides"),
	}
}

func TestPlannerService_SuggestBudget_ZeroTarget(t *testing.T) {
	svc := newPlannerService()

	plan := svc.SuggestBudget(sampleSpending(), decimal.Zero)

	assert.True(t, plan.NeededToSave.IsZero())
	assert.Empty(t, plan.Suggestions)
	assert.Equal(t, "1250.00", plan.CurrentSavings.StringFixed(2))
}

func TestPlannerService_SuggestBudget_GreedyAllocation(t *testing.T) {
	svc := newPlannerService()

	// Current savings 1250, target 1400 -> need 150. Rent (biggest expense)
	// contributes its full 10% (120), Dining covers the remaining 30.
	plan := svc.SuggestBudget(sampleSpending(), decimal.NewFromInt(1400))

	assert.Equal(t, "150.00", plan.NeededToSave.StringFixed(2))
	require.Len(t, plan.Suggestions, 2)

	assert.Equal(t, "Rent", plan.Suggestions[0].Category)
	assert.Equal(t, "120.00", plan.Suggestions[0].SuggestedCut.StringFixed(2))
	assert.Equal(t, "1080.00", plan.Suggestions[0].NewEstimatedSpend.StringFixed(2))

	assert.Equal(t, "Dining", plan.Suggestions[1].Category)
	assert.Equal(t, "30.00", plan.Suggestions[1].SuggestedCut.StringFixed(2))
}

func TestPlannerService_SuggestBudget_CutsNeverExceedTenPercent(t *testing.T) {
	svc := newPlannerService()

	// Need far exceeds what 10% cuts can cover; unmet need is left unmet.
	plan := svc.SuggestBudget(sampleSpending(), decimal.NewFromInt(10000))

	tenPercent := decimal.NewFromFloat(0.10)
	for _, s := range plan.Suggestions {
		maxCut := s.CurrentSpend.Mul(tenPercent)
		assert.True(t, s.SuggestedCut.LessThanOrEqual(maxCut),
			"cut %s exceeds 10%% of %s spend", s.SuggestedCut, s.Category)
	}
	assert.False(t, plan.NeededToSave.IsNegative())
}

func TestPlannerService_SuggestBudget_NegativeSavingsClampedToZero(t *testing.T) {
	svc := newPlannerService()
	transactions := []domain.Transaction{
		testutil.IncomeTxn("2024-01-01", 100),
		testutil.Txn("2024-01-02", -900, "Rent payment"),
	}

	plan := svc.SuggestBudget(transactions, decimal.NewFromInt(50))

	assert.True(t, plan.CurrentSavings.IsZero())
	assert.Equal(t, "50.00", plan.NeededToSave.StringFixed(2))
}

func TestPlannerService_SuggestBudget_IgnoresIncomeCategories(t *testing.T) {
	svc := newPlannerService()

	plan := svc.SuggestBudget(sampleSpending(), decimal.NewFromInt(5000))

	for _, s := range plan.Suggestions {
		assert.NotEqual(t, "Income", s.Category)
	}
}

func TestPlannerService_GenerateGoalPlan_Guards(t *testing.T) {
	svc := newPlannerService()

	for _, plan := range []*domain.GoalPlan{
		svc.GenerateGoalPlan(sampleSpending(), decimal.Zero, 6),
		svc.GenerateGoalPlan(sampleSpending(), decimal.NewFromInt(-10), 6),
		svc.GenerateGoalPlan(sampleSpending(), decimal.NewFromInt(1000), 0),
	} {
		assert.True(t, plan.GoalAmount.IsZero())
		assert.Equal(t, 0, plan.Months)
		assert.True(t, plan.MonthlyTarget.IsZero())
		assert.True(t, plan.WeeklyTarget.IsZero())
		assert.Empty(t, plan.Tips)
	}
}

func TestPlannerService_GenerateGoalPlan_Targets(t *testing.T) {
	svc := newPlannerService()

	plan := svc.GenerateGoalPlan(sampleSpending(), decimal.NewFromInt(1200), 6)

	assert.Equal(t, "200.00", plan.MonthlyTarget.StringFixed(2))
	assert.Equal(t, "50.00", plan.WeeklyTarget.StringFixed(2))
	assert.Equal(t, 6, plan.Months)
}

func TestPlannerService_GenerateGoalPlan_TipsCappedAtFiveCategories(t *testing.T) {
	svc := newPlannerService()
	transactions := []domain.Transaction{
		testutil.CategorizedTxn("2024-01-01", -100, "A"),
		testutil.CategorizedTxn("2024-01-02", -200, "B"),
		testutil.CategorizedTxn("2024-01-03", -300, "C"),
		testutil.CategorizedTxn("2024-01-04", -400, "D"),
		testutil.CategorizedTxn("2024-01-05", -500, "E"),
		testutil.CategorizedTxn("2024-01-06", -600, "F"),
		testutil.CategorizedTxn("2024-01-07", -700, "G"),
	}

	plan := svc.GenerateGoalPlan(transactions, decimal.NewFromInt(100000), 1)

	require.Len(t, plan.Tips, 5)
	// Most negative categories first.
	assert.Equal(t, "G", plan.Tips[0].Category)
	assert.Equal(t, "F", plan.Tips[1].Category)
	assert.Equal(t, "C", plan.Tips[4].Category)
}

func TestPlannerService_GenerateGoalPlan_StopsOnceTargetCovered(t *testing.T) {
	svc := newPlannerService()

	// Monthly target 50: Rent's 10% (120) alone covers it, clipped to 50.
	plan := svc.GenerateGoalPlan(sampleSpending(), decimal.NewFromInt(300), 6)

	require.Len(t, plan.Tips, 1)
	assert.Equal(t, "Rent", plan.Tips[0].Category)
	assert.Equal(t, "50.00", plan.Tips[0].SuggestedCut.StringFixed(2))
}
