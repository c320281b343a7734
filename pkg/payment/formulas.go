// Package payment provides the periodic payment formulas for the supported
// repayment methods. Every formula is derivable from (current balance, current
// monthly rate, remaining months) alone, which is what makes segment-based
// recomputation after a rate change, grace end, or prepayment correct.
package payment

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/daniel1mor3055/real-estate-investing/pkg/mathutil"
)

// Interest computes the interest accrued on a balance for one month.
func Interest(balance decimal.Decimal, monthlyRate float64) decimal.Decimal {
	return mathutil.RoundCents(balance.Mul(decimal.NewFromFloat(monthlyRate)))
}

// Annuity computes the level (constant) monthly payment that amortizes the
// balance over the remaining months at the given monthly rate, using the
// standard amortization formula:
//
//	payment = B * r * (1+r)^n / ((1+r)^n - 1)
//
// For a zero rate the payment is simply balance / remaining months.
// remainingMonths must be >= 1.
func Annuity(balance decimal.Decimal, monthlyRate float64, remainingMonths int) decimal.Decimal {
	if monthlyRate == 0 {
		return mathutil.RoundCents(balance.Div(decimal.NewFromInt(int64(remainingMonths))))
	}

	// The power term is computed in float64, then converted back to decimal
	// for monetary arithmetic.
	factor := math.Pow(1.0+monthlyRate, float64(remainingMonths))
	raw := balance.InexactFloat64() * monthlyRate * factor / (factor - 1.0)
	return mathutil.RoundCents(decimal.NewFromFloat(raw))
}

// EqualPrincipalInstallment computes the constant principal installment for
// the equal-principal method: balance / remaining months. The installment is
// re-derived whenever the balance or remaining term changes.
// remainingMonths must be >= 1.
func EqualPrincipalInstallment(balance decimal.Decimal, remainingMonths int) decimal.Decimal {
	return mathutil.RoundCents(balance.Div(decimal.NewFromInt(int64(remainingMonths))))
}

// Bullet computes the payment for an interest-only bullet loan: interest on
// the opening balance every month, plus the full remaining balance in the
// final month.
func Bullet(balance decimal.Decimal, monthlyRate float64, remainingMonths int) decimal.Decimal {
	interest := Interest(balance, monthlyRate)
	if remainingMonths <= 1 {
		return interest.Add(balance)
	}
	return interest
}
