package usage

// BudgetReader exposes the extraction token counters needed to build
// a usage report. Implemented by extraction.BudgetTracker.
type BudgetReader interface {
	DailyLimit() int64
	MonthlyLimit() int64
	DailyUsed() int64
	MonthlyUsed() int64
	RemainingDaily() int64
	RemainingMonthly() int64
}
