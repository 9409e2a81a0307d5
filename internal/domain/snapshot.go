package domain

// SnapshotMeta carries the rounded whole-dataset totals embedded in a Snapshot.
// Values are fixed two-decimal strings since they are already at the exposure
// boundary when the snapshot is built.
type SnapshotMeta struct {
	TotalTxns    int    `json:"totalTxns"`
	NetTotal     string `json:"netTotal"`
	AvgAmount    string `json:"avgAmount"`
	IncomeTotal  string `json:"incomeTotal"`
	ExpenseTotal string `json:"expenseTotal"`
}

// Snapshot is the structured context handed to the external AI collaborator.
// Samples are raw, unrounded records capped at MaxSnapshotSamples.
type Snapshot struct {
	Meta       SnapshotMeta      `json:"meta"`
	ByCategory map[string]string `json:"byCategory"`
	ByMonth    []MonthBucket     `json:"byMonth"`
	Forecast   *Forecast         `json:"forecast"`
	Samples    []Transaction     `json:"samples"`
	Guidance   string            `json:"guidance"`
}
