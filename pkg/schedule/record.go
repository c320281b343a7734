// Package schedule defines the data structures for amortization schedules and
// includes the reductions that combine and summarize them: aggregation of
// independent track schedules into a mortgage-level schedule, and the annual
// roll-up.
package schedule

import (
	"github.com/shopspring/decimal"
)

// MonthlyRecord holds the values for a single simulated month of one track
// (or of the aggregated mortgage). Records are never mutated after creation.
type MonthlyRecord struct {
	// Month is the 1-based month index within the schedule.
	Month int

	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal

	// Balance is the closing balance after this month's amortization.
	Balance decimal.Decimal

	CumulativePrincipal decimal.Decimal
	CumulativeInterest  decimal.Decimal

	// Events annotates the record with the events applied this month, e.g.
	// "rate_change: +1.50%", "grace_end", "prepayment: 50000.00 (reduce_payment)".
	Events []string
}

// AnnualRecord is the yearly roll-up of a monthly schedule: sums within the
// 12-month block and the closing balance of the block's last month.
type AnnualRecord struct {
	// Year is the 1-based year index.
	Year int

	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal

	// ClosingBalance is the balance at the end of the block's last month.
	ClosingBalance decimal.Decimal

	// Months is the number of months contributing to this block; the final
	// block at horizon end may be partial.
	Months int
}

// Aggregated is the mortgage-level schedule: month-indexed totals across all
// tracks plus the per-track breakdown the totals were reduced from.
type Aggregated struct {
	Totals []MonthlyRecord
	Tracks map[string][]MonthlyRecord
}
