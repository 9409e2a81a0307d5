package service

import (
	"sort"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/util"
	"github.com/shopspring/decimal"
)

// AnalysisService computes whole-dataset totals, monthly grouping and the
// naive savings forecast. Every method is a pure function of its input list
// and allocates fresh output, so concurrent calls are safe.
type AnalysisService struct{}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// Analyze computes the Summary for a transaction list. An empty list yields an
// all-zero Summary with an empty category map.
//
// NetTotal is the plain signed sum of all amounts. It is computed independently
// of the income/expense split: the two can diverge when type "income" is set on
// a negative amount. Both figures are kept as-is rather than reconciled.
func (s *AnalysisService) Analyze(transactions []domain.Transaction) *domain.Summary {
	summary := &domain.Summary{
		TotalTxns:  len(transactions),
		ByCategory: make(map[string]decimal.Decimal),
	}
	if len(transactions) == 0 {
		return summary
	}

	for i := range transactions {
		t := &transactions[i]
		summary.NetTotal = summary.NetTotal.Add(t.Amount)

		if t.IsIncome() {
			summary.IncomeTotal = summary.IncomeTotal.Add(t.Amount)
		}
		if t.Amount.IsNegative() {
			summary.ExpenseTotal = summary.ExpenseTotal.Add(t.Amount.Abs())
		}

		cat := categoryFor(t)
		summary.ByCategory[cat] = summary.ByCategory[cat].Add(t.Amount)
	}

	summary.AvgAmount = summary.NetTotal.Div(decimal.NewFromInt(int64(len(transactions))))
	return summary
}

// GroupByMonth buckets transactions by calendar month, sorted ascending by
// month key. Records whose date does not parse are skipped; they still count
// in Analyze totals.
func (s *AnalysisService) GroupByMonth(transactions []domain.Transaction) []domain.MonthBucket {
	byMonth := make(map[string]*domain.MonthBucket)
	for i := range transactions {
		t := &transactions[i]
		date, ok := util.ParseDate(t.Date)
		if !ok {
			continue
		}

		key := util.MonthKey(date)
		bucket, exists := byMonth[key]
		if !exists {
			bucket = &domain.MonthBucket{Month: key}
			byMonth[key] = bucket
		}

		if t.Amount.IsNegative() {
			bucket.Expenses = bucket.Expenses.Add(t.Amount.Abs())
		} else {
			bucket.Income = bucket.Income.Add(t.Amount)
		}
		bucket.Net = bucket.Net.Add(t.Amount)
	}

	buckets := make([]domain.MonthBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// ForecastSavings projects cumulative savings for the next months. The
// baseline is the aggregate net total used directly as the assumed average
// monthly net; it is deliberately not divided by the number of months present,
// and downstream text depends on the displayed baseline matching this value.
func (s *AnalysisService) ForecastSavings(transactions []domain.Transaction, months int) *domain.Forecast {
	var net decimal.Decimal
	for i := range transactions {
		net = net.Add(transactions[i].Amount)
	}

	forecast := &domain.Forecast{
		AvgMonthlyNet: net.Round(2),
		Points:        []domain.ForecastPoint{},
	}
	for i := 1; i <= months; i++ {
		forecast.Points = append(forecast.Points, domain.ForecastPoint{
			Month:            i,
			EstimatedSavings: net.Mul(decimal.NewFromInt(int64(i))).Round(2),
		})
	}
	return forecast
}
