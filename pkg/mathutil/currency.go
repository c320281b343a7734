// Package mathutil provides decimal currency and rate utility functions.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/daniel1mor3055/real-estate-investing/pkg/constants"
)

// CentEpsilon is the tolerance below which a balance is treated as fully
// repaid. Termination compares against this rather than exact zero.
var CentEpsilon = decimal.New(1, -constants.CentPrecision)

// RoundCents rounds a value to two decimals, i.e. to represent real currency.
func RoundCents(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CentPrecision)
}

// IsZero checks if a value is effectively zero (within the cent tolerance).
func IsZero(val decimal.Decimal) bool {
	return val.Abs().LessThanOrEqual(CentEpsilon)
}

// IsPositive checks if a value is positive beyond the cent tolerance.
func IsPositive(val decimal.Decimal) bool {
	return val.GreaterThan(CentEpsilon)
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// MonthlyRate converts an annual percentage rate to a monthly fractional rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// MonthlyIndexFactor converts an annual index percentage to the monthly
// compounding growth factor (1 + annual)^(1/12).
func MonthlyIndexFactor(annualIndexPercent float64) float64 {
	if annualIndexPercent == 0 {
		return 1.0
	}
	return math.Pow(1.0+annualIndexPercent/constants.PercentageMultiplier, 1.0/constants.MonthsPerYear)
}

// Min returns the lesser of two decimal values.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the greater of two decimal values.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
