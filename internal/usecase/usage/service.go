package usage

import (
	"context"
	"time"

	domusage "github.com/hemantsinghrajput/Seo-analyzer/internal/domain/usage"
)

// Service handles extraction usage reporting.
type Service struct {
	br BudgetReader
}

// New creates a Service. br can be nil (unlimited mode).
func New(br BudgetReader) *Service {
	return &Service{br: br}
}

// counters holds the budget numbers backing one report.
type counters struct {
	limit     int64
	used      int64
	remaining int64
}

func (s *Service) dailyCounters() counters {
	if s.br == nil {
		return counters{}
	}
	return counters{limit: s.br.DailyLimit(), used: s.br.DailyUsed(), remaining: s.br.RemainingDaily()}
}

func (s *Service) monthlyCounters() counters {
	if s.br == nil {
		return counters{}
	}
	return counters{limit: s.br.MonthlyLimit(), used: s.br.MonthlyUsed(), remaining: s.br.RemainingMonthly()}
}

// GetReport builds a usage report for the given period. Day and month are
// bounded by UTC calendar boundaries; total carries no boundaries and
// reports the monthly counters, the widest window the tracker keeps.
func (s *Service) GetReport(_ context.Context, period domusage.Period) domusage.Report {
	now := time.Now().UTC()

	var start, end int64
	var c counters
	switch period {
	case domusage.PeriodDay:
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start, end = from.UnixMilli(), from.Add(24*time.Hour).UnixMilli()
		c = s.dailyCounters()
	case domusage.PeriodMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		start, end = from.UnixMilli(), from.AddDate(0, 1, 0).UnixMilli()
		c = s.monthlyCounters()
	default:
		c = s.monthlyCounters()
	}

	exhausted := c.limit > 0 && c.remaining == 0
	b := domusage.NewBudget(c.limit, c.remaining, exhausted, end)
	return domusage.NewReport(period, start, end, c.used, b)
}
