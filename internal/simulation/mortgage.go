package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daniel1mor3055/real-estate-investing/pkg/constants"
	"github.com/daniel1mor3055/real-estate-investing/pkg/schedule"
)

// Summary holds mortgage-level figures derived from the track configurations
// and the aggregated schedule.
type Summary struct {
	TotalPrincipal    decimal.Decimal
	TotalInterest     decimal.Decimal
	FirstMonthPayment decimal.Decimal

	// WeightedRatePercent is the principal-weighted average base rate.
	WeightedRatePercent float64

	// WeightedTermYears is the principal-weighted average term in years.
	WeightedTermYears float64
}

// Result is the full output of a mortgage simulation.
type Result struct {
	Tracks     map[string][]schedule.MonthlyRecord
	Aggregated schedule.Aggregated
	Annual     []schedule.AnnualRecord
	Summary    Summary
}

// RunMortgage validates the mortgage, simulates every track, aggregates the
// schedules, and rolls them up annually. Tracks are mutually independent pure
// transformations, so they are simulated concurrently; aggregation runs only
// after all schedules are complete. Results land in a slice indexed by track
// position, so output is deterministic regardless of goroutine scheduling.
func (s *Simulator) RunMortgage(m Mortgage) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	schedules := make([][]schedule.MonthlyRecord, len(m.Tracks))
	var g errgroup.Group
	for i := range m.Tracks {
		i := i
		g.Go(func() error {
			records, err := s.Run(m.Tracks[i])
			if err != nil {
				return err
			}
			schedules[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byKey := make(map[string][]schedule.MonthlyRecord, len(m.Tracks))
	for i := range m.Tracks {
		byKey[m.Tracks[i].Key()] = schedules[i]
	}

	aggregated := schedule.Aggregate(byKey)
	s.logger.Debug(fmt.Sprintf("aggregated %d tracks over %d months", len(m.Tracks), len(aggregated.Totals)),
		zap.String("op", "simulation.RunMortgage"),
	)

	return &Result{
		Tracks:     byKey,
		Aggregated: aggregated,
		Annual:     schedule.ToAnnual(aggregated.Totals),
		Summary:    summarize(m, aggregated),
	}, nil
}

func summarize(m Mortgage, aggregated schedule.Aggregated) Summary {
	var summary Summary
	weightedRate := 0.0
	weightedTerm := 0.0
	for i := range m.Tracks {
		track := &m.Tracks[i]
		summary.TotalPrincipal = summary.TotalPrincipal.Add(track.Principal)
		principal := track.Principal.InexactFloat64()
		weightedRate += track.BaseRatePercent() * principal
		weightedTerm += float64(track.TermMonths) / constants.MonthsPerYear * principal
	}
	if total := summary.TotalPrincipal.InexactFloat64(); total > 0 {
		summary.WeightedRatePercent = weightedRate / total
		summary.WeightedTermYears = weightedTerm / total
	}
	if n := len(aggregated.Totals); n > 0 {
		summary.FirstMonthPayment = aggregated.Totals[0].Payment
		summary.TotalInterest = aggregated.Totals[n-1].CumulativeInterest
	}
	return summary
}
