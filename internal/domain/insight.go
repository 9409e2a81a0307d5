package domain

import "github.com/shopspring/decimal"

// Summary contains whole-dataset totals. All figures keep full precision;
// rounding happens only when a value leaves the core.
type Summary struct {
	TotalTxns    int
	NetTotal     decimal.Decimal
	AvgAmount    decimal.Decimal
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	ByCategory   map[string]decimal.Decimal
}

// MonthBucket aggregates income/expense/net for one calendar month.
// Month is a "YYYY-MM" key, so lexical ordering is chronological ordering.
type MonthBucket struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// ForecastPoint is the projected cumulative savings after Month months.
type ForecastPoint struct {
	Month            int             `json:"month"`
	EstimatedSavings decimal.Decimal `json:"estimatedSavings"`
}

type Forecast struct {
	AvgMonthlyNet decimal.Decimal `json:"avgMonthlyNet"`
	Points        []ForecastPoint `json:"forecast"`
}

// BudgetSuggestion proposes a cut for a single expense category.
type BudgetSuggestion struct {
	Category          string          `json:"category"`
	CurrentSpend      decimal.Decimal `json:"currentSpend"`
	SuggestedCut      decimal.Decimal `json:"suggestedCut"`
	NewEstimatedSpend decimal.Decimal `json:"newEstimatedSpend"`
}

type BudgetPlan struct {
	CurrentSavings decimal.Decimal    `json:"currentSavings"`
	TargetSavings  decimal.Decimal    `json:"targetSavings"`
	NeededToSave   decimal.Decimal    `json:"neededToSave"`
	Suggestions    []BudgetSuggestion `json:"suggestions"`
}

// GoalTip proposes a monthly cut for one category towards a savings goal.
type GoalTip struct {
	Category       string          `json:"category"`
	CurrentMonthly decimal.Decimal `json:"currentMonthly"`
	SuggestedCut   decimal.Decimal `json:"suggestedCut"`
}

type GoalPlan struct {
	GoalAmount    decimal.Decimal `json:"goalAmount"`
	Months        int             `json:"months"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
	WeeklyTarget  decimal.Decimal `json:"weeklyTarget"`
	Tips          []GoalTip       `json:"tips"`
}
