package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/daniel1mor3055/real-estate-investing/pkg/mathutil"
	"github.com/daniel1mor3055/real-estate-investing/pkg/payment"
	"github.com/daniel1mor3055/real-estate-investing/pkg/schedule"
)

// Simulator produces amortization schedules for tracks and mortgages.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a new Simulator instance.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// trackState is the forward-looking amortization basis carried between months.
// Each month's transition is a pure function (trackState, month) ->
// (trackState, MonthlyRecord); recomputation events (rate change, grace end,
// prepayment) replace the basis going forward and never edit past records.
type trackState struct {
	balance     decimal.Decimal
	ratePercent float64

	// fixedPayment is the annuity payment basis; installment is the
	// equal-principal basis. Only the track's method's field is maintained.
	fixedPayment decimal.Decimal
	installment  decimal.Decimal

	graceEnded bool

	cumulativePrincipal decimal.Decimal
	cumulativeInterest  decimal.Decimal

	done bool
}

// deriveBasis recomputes the payment basis from (current balance, current
// rate, remaining months) alone.
func deriveBasis(track *Track, st trackState, remainingMonths int) trackState {
	monthlyRate := mathutil.MonthlyRate(st.ratePercent)
	switch track.Method {
	case Annuity:
		st.fixedPayment = payment.Annuity(st.balance, monthlyRate, remainingMonths)
	case EqualPrincipal:
		st.installment = payment.EqualPrincipalInstallment(st.balance, remainingMonths)
	}
	return st
}

// closesTerm reports whether the final scheduled month may clamp its
// principal component to the full remaining balance. The clamp absorbs only
// accumulated rounding drift, bounded at a cent per elapsed month; a larger
// gap means the payment schedule never amortized the balance, and the month
// runs unclamped so the shortfall surfaces as an AmortizationError (unless a
// same-month prepayment clears it).
func closesTerm(balance, scheduledPrincipal decimal.Decimal, remainingMonths, month int) bool {
	if remainingMonths != 1 {
		return false
	}
	drift := balance.Sub(scheduledPrincipal)
	return drift.LessThanOrEqual(mathutil.CentEpsilon.Mul(decimal.NewFromInt(int64(month))))
}

// Run simulates a single track month by month, terminating at full repayment
// or at the end of the term. On any error the partial schedule is discarded.
func (s *Simulator) Run(track Track) ([]schedule.MonthlyRecord, error) {
	if err := track.Validate(); err != nil {
		return nil, err
	}

	baseRate, err := EffectiveRatePercent(&track, 0)
	if err != nil {
		return nil, err
	}

	st := trackState{
		balance:     mathutil.RoundCents(track.Principal),
		ratePercent: baseRate,
	}
	st.graceEnded = track.Grace == nil
	if st.graceEnded {
		st = deriveBasis(&track, st, track.TermMonths)
	}

	queue := buildEventQueue(&track)
	records := make([]schedule.MonthlyRecord, 0, track.TermMonths)

	next := 0
	for month := 1; month <= track.TermMonths; month++ {
		start := next
		for next < len(queue) && queue[next].month == month {
			next++
		}

		nextState, record, stepErr := step(&track, st, month, queue[start:next])
		if stepErr != nil {
			return nil, stepErr
		}
		records = append(records, record)
		st = nextState

		if st.done {
			if month < track.TermMonths {
				s.logger.Debug(fmt.Sprintf("track %s fully repaid at month %d, %d months early",
					track.Key(), month, track.TermMonths-month),
					zap.String("op", "simulation.Run"),
				)
			}
			break
		}
	}

	if !st.done && mathutil.IsPositive(st.balance) {
		return nil, &AmortizationError{
			TrackID: track.Key(),
			Month:   track.TermMonths,
			Reason: fmt.Sprintf("balance %s remains after the final month; the configuration does not amortize",
				st.balance.StringFixed(2)),
		}
	}

	return records, nil
}

// step advances one track by one month. Evaluation order within a month is
// fixed: rate updates, indexation, grace or normal amortization, prepayments.
func step(track *Track, st trackState, month int, events []trackEvent) (trackState, schedule.MonthlyRecord, error) {
	record := schedule.MonthlyRecord{Month: month}

	// 1. Rate updates. The new rate is visible in this month's record,
	// computed from the prior month's closing balance.
	for _, ev := range events {
		if ev.kind != kindRateChange {
			continue
		}
		st.ratePercent += ev.rateChange.DeltaPercent
		if st.graceEnded {
			st = deriveBasis(track, st, track.TermMonths-(month-1))
		}
		record.Events = append(record.Events, fmt.Sprintf("rate_change: %+.2f%%", ev.rateChange.DeltaPercent))
	}
	if st.ratePercent < 0 {
		return st, record, &ConfigurationError{
			TrackID: track.Key(),
			Month:   month,
			Reason:  "scheduled changes drive the effective rate below zero",
		}
	}
	monthlyRate := mathutil.MonthlyRate(st.ratePercent)

	// 2. Indexation grows the balance before interest is computed, every
	// month regardless of grace status.
	indexFactor := mathutil.MonthlyIndexFactor(track.AnnualIndexPercent)
	indexed := indexFactor != 1.0
	if indexed {
		st.balance = mathutil.RoundCents(st.balance.Mul(decimal.NewFromFloat(indexFactor)))
	}

	var interest, principalPart, pay decimal.Decimal

	inGrace := track.Grace != nil && month <= track.Grace.DurationMonths
	if inGrace {
		// 3. Grace evaluation.
		interest = payment.Interest(st.balance, monthlyRate)
		switch track.Grace.Type {
		case GraceFullDeferral:
			st.balance = st.balance.Add(interest)
			if len(record.Events) == 0 {
				record.Events = append(record.Events, "grace: full_deferral")
			}
		case GraceInterestOnly:
			pay = interest
			if len(record.Events) == 0 {
				record.Events = append(record.Events, "grace: interest_only")
			}
		}
	} else {
		// 4. Normal amortization. The loop bounds keep remaining >= 1.
		remaining := track.TermMonths - (month - 1)

		rederive := false
		if !st.graceEnded {
			// First month after the grace window: one-time re-derivation from
			// the grace-end balance over the full remaining term. This is the
			// payment jump the schedule must exhibit.
			st.graceEnded = true
			rederive = true
			record.Events = append(record.Events, "grace_end")
		}
		if indexed {
			// Inflation-linked principal growth shifts the basis every month.
			// Policy: index first, then recompute.
			rederive = true
		}
		if rederive {
			st = deriveBasis(track, st, remaining)
		}

		interest = payment.Interest(st.balance, monthlyRate)
		switch track.Method {
		case Annuity:
			pay = st.fixedPayment
			principalPart = pay.Sub(interest)
			if principalPart.IsNegative() {
				principalPart = decimal.Zero
				pay = interest
			}
			if closesTerm(st.balance, principalPart, remaining, month) || principalPart.GreaterThan(st.balance) {
				principalPart = st.balance
				pay = interest.Add(principalPart)
			}
		case EqualPrincipal:
			principalPart = st.installment
			if closesTerm(st.balance, principalPart, remaining, month) || principalPart.GreaterThan(st.balance) {
				principalPart = st.balance
			}
			pay = interest.Add(principalPart)
		case Bullet:
			pay = payment.Bullet(st.balance, monthlyRate, remaining)
			principalPart = pay.Sub(interest)
		default:
			return st, record, &ConfigurationError{
				TrackID: track.Key(),
				Month:   month,
				Reason:  fmt.Sprintf("unrecognized repayment method %v", track.Method),
			}
		}
		st.balance = st.balance.Sub(principalPart)
	}

	// 5. Prepayments apply after the scheduled amortization, per the
	// same-month tie-break rule.
	for _, ev := range events {
		if ev.kind != kindPrepayment {
			continue
		}
		pp := ev.prepayment
		extra := pp.Amount
		if pp.FullPayoff {
			extra = st.balance
		}
		extra = mathutil.RoundCents(mathutil.Min(extra, st.balance))
		if !extra.IsPositive() {
			continue
		}

		pay = pay.Add(extra)
		principalPart = principalPart.Add(extra)
		st.balance = st.balance.Sub(extra)

		if remaining := track.TermMonths - month; remaining > 0 && st.graceEnded && pp.Effect == ReducePayment {
			st = deriveBasis(track, st, remaining)
		}
		record.Events = append(record.Events, fmt.Sprintf("prepayment: %s (%s)", extra.StringFixed(2), pp.Effect))
	}

	if st.balance.IsNegative() {
		st.balance = decimal.Zero
	}

	st.cumulativePrincipal = st.cumulativePrincipal.Add(principalPart)
	st.cumulativeInterest = st.cumulativeInterest.Add(interest)

	record.Payment = pay
	record.Interest = interest
	record.Principal = principalPart
	record.Balance = st.balance
	record.CumulativePrincipal = st.cumulativePrincipal
	record.CumulativeInterest = st.cumulativeInterest

	if st.balance.LessThanOrEqual(mathutil.CentEpsilon) {
		st.done = true
	}

	return st, record, nil
}
