// Package output provides utilities for formatting and displaying simulation
// results. Export owns no schedule semantics; it reproduces the engine's
// fields: Month, Payment, Interest, Principal, Balance.
package output

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daniel1mor3055/real-estate-investing/internal/simulation"
	"github.com/daniel1mor3055/real-estate-investing/pkg/datetime"
	"github.com/daniel1mor3055/real-estate-investing/pkg/schedule"
)

// Options controls what the formatters render.
type Options struct {
	// StartDate optionally anchors month 1 to a calendar month (YYYY-MM);
	// rows then carry dates instead of bare month indices.
	StartDate string

	// PerTrack adds the per-track breakdown.
	PerTrack bool

	// Annual renders the annual roll-up (for CSV, instead of the monthly
	// schedule).
	Annual bool
}

func monthLabel(opts Options, month int) (string, error) {
	if opts.StartDate == "" {
		return fmt.Sprintf("%d", month), nil
	}
	return datetime.MonthLabel(opts.StartDate, month)
}

func sortedTrackNames(tracks map[string][]schedule.MonthlyRecord) []string {
	names := make([]string, 0, len(tracks))
	for name := range tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *simulation.Result, opts Options) error {
	p := message.NewPrinter(language.English)

	_, _ = p.Printf("--- Mortgage: principal %.2f, weighted rate %.2f%%, weighted term %.1f years ---\n",
		result.Summary.TotalPrincipal.InexactFloat64(),
		result.Summary.WeightedRatePercent,
		result.Summary.WeightedTermYears,
	)
	_, _ = p.Printf("First payment %.2f, total interest %.2f\n\n",
		result.Summary.FirstMonthPayment.InexactFloat64(),
		result.Summary.TotalInterest.InexactFloat64(),
	)

	if err := prettySchedule(p, "Combined schedule", result.Aggregated.Totals, opts); err != nil {
		return err
	}

	if opts.PerTrack {
		for _, name := range sortedTrackNames(result.Tracks) {
			fmt.Printf("\n")
			if err := prettySchedule(p, fmt.Sprintf("Track %s", name), result.Tracks[name], opts); err != nil {
				return err
			}
		}
	}

	if opts.Annual {
		fmt.Printf("\n--- Annual roll-up ---\n")
		fmt.Printf("Year | Payment       | Interest      | Principal     | Balance\n")
		fmt.Printf("____ | _____________ | _____________ | _____________ | _____________\n")
		for _, record := range result.Annual {
			_, _ = p.Printf("%4d | %13.2f | %13.2f | %13.2f | %13.2f\n",
				record.Year,
				record.Payment.InexactFloat64(),
				record.Interest.InexactFloat64(),
				record.Principal.InexactFloat64(),
				record.ClosingBalance.InexactFloat64(),
			)
		}
	}

	return nil
}

func prettySchedule(p *message.Printer, title string, records []schedule.MonthlyRecord, opts Options) error {
	fmt.Printf("--- %s ---\n", title)
	fmt.Printf("Month   | Payment       | Interest      | Principal     | Balance       | Events\n")
	fmt.Printf("_____   | _____________ | _____________ | _____________ | _____________ | ______\n")
	for _, record := range records {
		label, err := monthLabel(opts, record.Month)
		if err != nil {
			return err
		}
		_, _ = p.Printf("%-7s | %13.2f | %13.2f | %13.2f | %13.2f | %s\n",
			label,
			record.Payment.InexactFloat64(),
			record.Interest.InexactFloat64(),
			record.Principal.InexactFloat64(),
			record.Balance.InexactFloat64(),
			strings.Join(record.Events, ","),
		)
	}
	return nil
}

// CsvFormat outputs in comma-separated value format: the monthly schedule
// with a track column, or the annual roll-up when Options.Annual is set.
func CsvFormat(result *simulation.Result, opts Options) error {
	if opts.Annual {
		fmt.Printf("\"year\",\"payment\",\"interest\",\"principal\",\"balance\"\n")
		for _, record := range result.Annual {
			fmt.Printf("\"%d\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
				record.Year,
				record.Payment.StringFixed(2),
				record.Interest.StringFixed(2),
				record.Principal.StringFixed(2),
				record.ClosingBalance.StringFixed(2),
			)
		}
		return nil
	}

	fmt.Printf("\"month\",\"track\",\"payment\",\"interest\",\"principal\",\"balance\",\"events\"\n")
	if err := csvSchedule("total", result.Aggregated.Totals, opts); err != nil {
		return err
	}
	if opts.PerTrack {
		for _, name := range sortedTrackNames(result.Tracks) {
			if err := csvSchedule(name, result.Tracks[name], opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvSchedule(track string, records []schedule.MonthlyRecord, opts Options) error {
	for _, record := range records {
		label, err := monthLabel(opts, record.Month)
		if err != nil {
			return err
		}
		fmt.Printf("\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			label,
			track,
			record.Payment.StringFixed(2),
			record.Interest.StringFixed(2),
			record.Principal.StringFixed(2),
			record.Balance.StringFixed(2),
			strings.Join(record.Events, ","),
		)
	}
	return nil
}
