// Package simulation implements the deterministic, event-driven amortization
// engine: per-track month-by-month simulation with re-amortization semantics,
// and the mortgage-level orchestration that aggregates independent tracks.
package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/daniel1mor3055/real-estate-investing/pkg/constants"
	"github.com/daniel1mor3055/real-estate-investing/pkg/mathutil"
)

// RepaymentMethod is the closed set of supported repayment methods.
type RepaymentMethod int

const (
	// Annuity is the level-payment ("Spitzer") method: constant total payment,
	// shifting principal/interest mix.
	Annuity RepaymentMethod = iota

	// EqualPrincipal pays a constant principal installment; the total payment
	// declines as interest declines.
	EqualPrincipal

	// Bullet is interest-only until the final month, when the full principal
	// is due.
	Bullet
)

// String returns the config-file spelling of the method.
func (m RepaymentMethod) String() string {
	switch m {
	case Annuity:
		return "annuity"
	case EqualPrincipal:
		return "equal_principal"
	case Bullet:
		return "bullet"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseRepaymentMethod converts a config-file spelling into a RepaymentMethod.
// "spitzer" is accepted as an alias for annuity.
func ParseRepaymentMethod(s string) (RepaymentMethod, error) {
	switch s {
	case "annuity", "spitzer":
		return Annuity, nil
	case "equal_principal":
		return EqualPrincipal, nil
	case "bullet":
		return Bullet, nil
	default:
		return 0, fmt.Errorf("unrecognized repayment method %q", s)
	}
}

// GraceType distinguishes the two grace period variants.
type GraceType int

const (
	// GraceInterestOnly pays interest on the (indexed) opening balance with no
	// principal reduction.
	GraceInterestOnly GraceType = iota

	// GraceFullDeferral makes no payment at all; interest capitalizes into the
	// balance.
	GraceFullDeferral
)

func (g GraceType) String() string {
	switch g {
	case GraceInterestOnly:
		return "interest_only"
	case GraceFullDeferral:
		return "full_deferral"
	default:
		return fmt.Sprintf("unknown(%d)", int(g))
	}
}

// ParseGraceType converts a config-file spelling into a GraceType.
func ParseGraceType(s string) (GraceType, error) {
	switch s {
	case "interest_only":
		return GraceInterestOnly, nil
	case "full_deferral":
		return GraceFullDeferral, nil
	default:
		return 0, fmt.Errorf("unrecognized grace type %q", s)
	}
}

// Grace is an initial window where the required payment is reduced or fully
// deferred.
type Grace struct {
	Type           GraceType
	DurationMonths int
}

// RateChange is a scheduled change of the nominal annual rate. The change is
// visible starting at the record computed for Month, using the balance as of
// the prior month's close.
type RateChange struct {
	Month int
	// DeltaPercent is the change in percentage points, e.g. 1.5 raises the
	// rate by 1.5%.
	DeltaPercent float64
}

// PrepaymentEffect selects how a prepayment affects the remaining loan.
type PrepaymentEffect int

const (
	// ReducePayment keeps the term and re-derives a lower payment basis from
	// the reduced balance.
	ReducePayment PrepaymentEffect = iota

	// ShortenTerm keeps the payment basis untouched; the loan reaches zero
	// balance before its nominal term.
	ShortenTerm
)

func (e PrepaymentEffect) String() string {
	switch e {
	case ReducePayment:
		return "reduce_payment"
	case ShortenTerm:
		return "shorten_term"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// ParsePrepaymentEffect converts a config-file spelling into a PrepaymentEffect.
func ParsePrepaymentEffect(s string) (PrepaymentEffect, error) {
	switch s {
	case "reduce_payment", "":
		return ReducePayment, nil
	case "shorten_term":
		return ShortenTerm, nil
	default:
		return 0, fmt.Errorf("unrecognized prepayment effect %q", s)
	}
}

// Prepayment is an out-of-schedule principal reduction at a given month.
type Prepayment struct {
	Month int
	// Amount is ignored when FullPayoff is set.
	Amount     decimal.Decimal
	FullPayoff bool
	Effect     PrepaymentEffect
}

// Track is the immutable configuration of one independently amortizing
// sub-loan within a mortgage.
type Track struct {
	// ID uniquely identifies the track; the config layer defaults it to a
	// generated UUID when the track has no name.
	ID   string
	Name string

	Principal decimal.Decimal

	// AnnualRatePercent is the base nominal annual rate in percent.
	AnnualRatePercent float64

	// BankRatePercent, when set, marks a prime-linked track: the effective
	// base rate is the central-bank rate plus the prime margin, replacing
	// AnnualRatePercent.
	BankRatePercent *float64

	TermMonths int
	Method     RepaymentMethod

	// AnnualIndexPercent is the annual inflation index rate for linked tracks,
	// compounded monthly into the balance. Zero means no indexation.
	AnnualIndexPercent float64

	Grace       *Grace
	RateChanges []RateChange
	Prepayments []Prepayment
}

// Key returns the identifier used for per-track breakdowns: the display name
// when present, the ID otherwise.
func (t *Track) Key() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// BaseRatePercent returns the effective base annual rate: the central-bank
// rate plus the prime margin for prime-linked tracks, the configured nominal
// rate otherwise.
func (t *Track) BaseRatePercent() float64 {
	if t.BankRatePercent != nil {
		return *t.BankRatePercent + constants.PrimeMarginPercent
	}
	return t.AnnualRatePercent
}

// Validate checks the track invariants. All findings are combined so the
// caller sees every problem at once; any error means no schedule is produced.
func (t *Track) Validate() error {
	var err error

	if !t.Principal.GreaterThan(decimal.Zero) {
		err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Reason: "principal must be positive"})
	}
	if t.TermMonths <= 0 {
		err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Reason: "term must be positive"})
	}
	if t.BaseRatePercent() < 0 {
		err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Reason: "rate must not be negative"})
	}
	switch t.Method {
	case Annuity, EqualPrincipal, Bullet:
	default:
		err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Reason: fmt.Sprintf("unrecognized repayment method %v", t.Method)})
	}

	if t.Grace != nil {
		switch t.Grace.Type {
		case GraceInterestOnly, GraceFullDeferral:
		default:
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Reason: fmt.Sprintf("unrecognized grace type %v", t.Grace.Type)})
		}
		if t.Grace.DurationMonths < 1 || t.Grace.DurationMonths >= t.TermMonths {
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Reason: "grace duration must be at least one month and shorter than the term"})
		}
	}

	seen := make(map[int]bool, len(t.RateChanges))
	for _, rc := range t.RateChanges {
		if rc.Month < 1 || rc.Month > t.TermMonths {
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Month: rc.Month, Reason: "rate change month outside loan term"})
		}
		if seen[rc.Month] {
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Month: rc.Month, Reason: "conflicting rate changes share the same effective month"})
		}
		seen[rc.Month] = true
	}

	for _, pp := range t.Prepayments {
		if pp.Month < 1 || pp.Month > t.TermMonths {
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Month: pp.Month, Reason: "prepayment month outside loan term"})
		}
		if !pp.FullPayoff && !mathutil.IsPositive(pp.Amount) {
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Month: pp.Month, Reason: "prepayment amount must be positive"})
		}
		switch pp.Effect {
		case ReducePayment, ShortenTerm:
		default:
			err = multierr.Append(err, &ConfigurationError{TrackID: t.Key(), Month: pp.Month, Reason: fmt.Sprintf("unrecognized prepayment effect %v", pp.Effect)})
		}
	}

	return err
}

// Mortgage is an ordered set of mutually independent tracks.
type Mortgage struct {
	Tracks []Track
}

// Validate checks every track and rejects duplicate track keys, which would
// make the aggregated breakdown ambiguous.
func (m *Mortgage) Validate() error {
	var err error
	if len(m.Tracks) == 0 {
		err = multierr.Append(err, &ConfigurationError{TrackID: "-", Reason: "mortgage has no tracks"})
	}
	keys := make(map[string]bool, len(m.Tracks))
	for i := range m.Tracks {
		track := &m.Tracks[i]
		err = multierr.Append(err, track.Validate())
		if keys[track.Key()] {
			err = multierr.Append(err, &ConfigurationError{TrackID: track.Key(), Reason: "duplicate track identifier"})
		}
		keys[track.Key()] = true
	}
	return err
}
