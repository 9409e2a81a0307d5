package service

import (
	"github.com/finwise/finwise-backend/internal/domain"
)

// snapshotForecastMonths is the forecast horizon embedded in every snapshot.
const snapshotForecastMonths = 3

// snapshotGuidance instructs the AI collaborator to ground its advice in the
// supplied figures instead of producing generic tips.
const snapshotGuidance = "You are a helpful financial coach. Ground every piece of advice " +
	"in the supplied totals, category sums, monthly series and forecast; cite concrete " +
	"figures and suggest step-by-step actions."

// ContextService assembles the snapshot handed to the AI collaborator.
type ContextService struct {
	analysis *AnalysisService
}

// NewContextService creates a new ContextService
func NewContextService(analysis *AnalysisService) *ContextService {
	return &ContextService{analysis: analysis}
}

// BuildSnapshot derives a compact, rounded view of the dataset plus a bounded
// sample of raw records. Totals and category sums are rounded here because the
// snapshot is an exposure boundary; samples stay unrounded.
func (s *ContextService) BuildSnapshot(transactions []domain.Transaction) *domain.Snapshot {
	summary := s.analysis.Analyze(transactions)

	byCategory := make(map[string]string, len(summary.ByCategory))
	for cat, sum := range summary.ByCategory {
		byCategory[cat] = sum.StringFixed(2)
	}

	samples := transactions
	if len(samples) > domain.MaxSnapshotSamples {
		samples = samples[:domain.MaxSnapshotSamples]
	}

	return &domain.Snapshot{
		Meta: domain.SnapshotMeta{
			TotalTxns:    summary.TotalTxns,
			NetTotal:     summary.NetTotal.StringFixed(2),
			AvgAmount:    summary.AvgAmount.StringFixed(2),
			IncomeTotal:  summary.IncomeTotal.StringFixed(2),
			ExpenseTotal: summary.ExpenseTotal.StringFixed(2),
		},
		ByCategory: byCategory,
		ByMonth:    s.analysis.GroupByMonth(transactions),
		Forecast:   s.analysis.ForecastSavings(transactions, snapshotForecastMonths),
		Samples:    samples,
		Guidance:   snapshotGuidance,
	}
}
