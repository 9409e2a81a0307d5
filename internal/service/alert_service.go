package service

import (
	"fmt"
	"sort"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/util"
	"github.com/shopspring/decimal"
)

// Alert thresholds. These are fixed behavioral constants: changing them
// changes which warnings users see.
var (
	savingsRateExcellent = decimal.NewFromInt(20)
	savingsRateGood      = decimal.NewFromInt(10)
	netDropRatio         = decimal.NewFromFloat(0.8)
	spikeRatio           = decimal.NewFromFloat(1.3)
	reductionRatio       = decimal.NewFromFloat(0.7)
	categorySpendFloor   = decimal.NewFromInt(100)
	topExpenseFloor      = decimal.NewFromInt(500)
)

// AlertService derives proactive textual alerts from aggregate and monthly
// views of a transaction list.
type AlertService struct {
	analysis *AnalysisService
}

// NewAlertService creates a new AlertService
func NewAlertService(analysis *AnalysisService) *AlertService {
	return &AlertService{analysis: analysis}
}

// ComputeAlerts evaluates the alert rules in order and returns the resulting
// messages. The result is never empty: with no transactions it carries a
// single "no data" message, and when no rule fires an "all clear" one.
func (s *AlertService) ComputeAlerts(transactions []domain.Transaction) []string {
	if len(transactions) == 0 {
		return []string{"No transaction data yet. Upload a CSV to get insights."}
	}

	summary := s.analysis.Analyze(transactions)
	buckets := s.analysis.GroupByMonth(transactions)

	var alerts []string

	// Rule 1: overspending, or savings-rate tiers when there is income.
	if summary.ExpenseTotal.GreaterThan(summary.IncomeTotal) {
		deficit := summary.ExpenseTotal.Sub(summary.IncomeTotal)
		alerts = append(alerts, fmt.Sprintf(
			"You are overspending: expenses exceed income by %s. Review your largest categories.",
			deficit.StringFixed(2)))
	} else if summary.IncomeTotal.IsPositive() {
		rate := summary.IncomeTotal.Sub(summary.ExpenseTotal).
			Div(summary.IncomeTotal).
			Mul(decimal.NewFromInt(100))
		switch {
		case rate.GreaterThan(savingsRateExcellent):
			alerts = append(alerts, fmt.Sprintf(
				"Excellent: you are saving %s%% of your income.", rate.StringFixed(1)))
		case rate.GreaterThan(savingsRateGood):
			alerts = append(alerts, fmt.Sprintf(
				"Good: you are saving %s%% of your income.", rate.StringFixed(1)))
		default:
			alerts = append(alerts, fmt.Sprintf(
				"You are saving only %s%% of your income. Aim higher.", rate.StringFixed(1)))
		}
	}

	// Rule 2: month-over-month net trend across the last two buckets.
	if len(buckets) >= 2 {
		prior := buckets[len(buckets)-2]
		latest := buckets[len(buckets)-1]
		if prior.Net.IsPositive() && latest.Net.LessThan(prior.Net.Mul(netDropRatio)) {
			drop := prior.Net.Sub(latest.Net).
				Div(prior.Net).
				Mul(decimal.NewFromInt(100))
			alerts = append(alerts, fmt.Sprintf(
				"Net savings dropped by %s%% compared to %s.", drop.StringFixed(1), prior.Month))
		} else if latest.Net.GreaterThan(prior.Net) {
			alerts = append(alerts, fmt.Sprintf(
				"Positive trend: net savings grew in %s compared to %s.", latest.Month, prior.Month))
		}

		// Rule 3: per-category spikes and reductions between those two months.
		alerts = append(alerts, s.categoryShiftAlerts(transactions, prior.Month, latest.Month)...)
	}

	// Rule 4: top expense category advisory.
	if alert, ok := topExpenseAlert(summary); ok {
		alerts = append(alerts, alert)
	}

	if len(alerts) == 0 {
		alerts = append(alerts, "All clear: no spending anomalies detected.")
	}
	return alerts
}

// categoryShiftAlerts compares absolute per-category spend between two month
// keys. The spend floor keeps small categories from generating noise.
func (s *AlertService) categoryShiftAlerts(transactions []domain.Transaction, priorKey, latestKey string) []string {
	priorSpend := categorySpendForMonth(transactions, priorKey)
	latestSpend := categorySpendForMonth(transactions, latestKey)

	categories := make([]string, 0, len(priorSpend)+len(latestSpend))
	seen := make(map[string]bool)
	for cat := range priorSpend {
		categories = append(categories, cat)
		seen[cat] = true
	}
	for cat := range latestSpend {
		if !seen[cat] {
			categories = append(categories, cat)
		}
	}
	sort.Strings(categories)

	var alerts []string
	for _, cat := range categories {
		prior := priorSpend[cat]
		latest := latestSpend[cat]
		if latest.GreaterThanOrEqual(prior.Mul(spikeRatio)) && latest.GreaterThan(categorySpendFloor) {
			alerts = append(alerts, fmt.Sprintf(
				"Spending on %s jumped to %s this month, up from %s.",
				cat, latest.StringFixed(2), prior.StringFixed(2)))
		} else if latest.LessThanOrEqual(prior.Mul(reductionRatio)) && prior.GreaterThan(categorySpendFloor) {
			alerts = append(alerts, fmt.Sprintf(
				"Nice work: %s spending is down to %s from %s.",
				cat, latest.StringFixed(2), prior.StringFixed(2)))
		}
	}
	return alerts
}

// categorySpendForMonth sums absolute expense amounts per category for one
// month key. Income amounts are ignored.
func categorySpendForMonth(transactions []domain.Transaction, monthKey string) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		if !t.Amount.IsNegative() {
			continue
		}
		date, ok := util.ParseDate(t.Date)
		if !ok || util.MonthKey(date) != monthKey {
			continue
		}
		cat := categoryFor(t)
		spend[cat] = spend[cat].Add(t.Amount.Abs())
	}
	return spend
}

// topExpenseAlert reports the biggest expense category when it exceeds the
// advisory floor. Expense categories are those with negative signed sums.
func topExpenseAlert(summary *domain.Summary) (string, bool) {
	type categorySum struct {
		category string
		sum      decimal.Decimal
	}

	var expenses []categorySum
	for cat, sum := range summary.ByCategory {
		if sum.IsNegative() {
			expenses = append(expenses, categorySum{category: cat, sum: sum})
		}
	}
	if len(expenses) == 0 {
		return "", false
	}

	// Most negative first; tie-break on name for determinism.
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].sum.Equal(expenses[j].sum) {
			return expenses[i].category < expenses[j].category
		}
		return expenses[i].sum.LessThan(expenses[j].sum)
	})
	if len(expenses) > 3 {
		expenses = expenses[:3]
	}

	largest := expenses[0]
	if largest.sum.Abs().LessThanOrEqual(topExpenseFloor) {
		return "", false
	}
	return fmt.Sprintf(
		"Your biggest expense category is %s at %s. Consider setting a budget for it.",
		largest.category, largest.sum.Abs().StringFixed(2)), true
}
