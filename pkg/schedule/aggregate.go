package schedule

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Aggregate merges independently simulated track schedules into a single
// month-indexed total schedule. For every month in the union of month indices
// it sums payment, interest, principal, and balance across the tracks present
// that month; a track that matured early contributes zero beyond its own
// horizon. Balance summation is valid because each track's balance is already
// net of its own amortization.
//
// Track names are iterated in sorted order so event annotations are
// deterministic across runs.
func Aggregate(tracks map[string][]MonthlyRecord) Aggregated {
	names := make([]string, 0, len(tracks))
	maxMonth := 0
	for name, records := range tracks {
		names = append(names, name)
		for _, record := range records {
			if record.Month > maxMonth {
				maxMonth = record.Month
			}
		}
	}
	sort.Strings(names)

	totals := make([]MonthlyRecord, 0, maxMonth)
	cumulativePrincipal := decimal.Zero
	cumulativeInterest := decimal.Zero

	for month := 1; month <= maxMonth; month++ {
		total := MonthlyRecord{Month: month}
		for _, name := range names {
			records := tracks[name]
			// Track records are contiguous from month 1 so the record for a
			// given month, when present, sits at index month-1.
			if month > len(records) {
				continue
			}
			record := records[month-1]
			total.Payment = total.Payment.Add(record.Payment)
			total.Interest = total.Interest.Add(record.Interest)
			total.Principal = total.Principal.Add(record.Principal)
			total.Balance = total.Balance.Add(record.Balance)
			for _, event := range record.Events {
				total.Events = append(total.Events, fmt.Sprintf("%s: %s", name, event))
			}
		}
		cumulativePrincipal = cumulativePrincipal.Add(total.Principal)
		cumulativeInterest = cumulativeInterest.Add(total.Interest)
		total.CumulativePrincipal = cumulativePrincipal
		total.CumulativeInterest = cumulativeInterest
		totals = append(totals, total)
	}

	return Aggregated{Totals: totals, Tracks: tracks}
}
