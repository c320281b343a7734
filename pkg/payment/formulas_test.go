package payment

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/daniel1mor3055/real-estate-investing/pkg/mathutil"
)

func TestInterest(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		monthlyRate float64
		expected    string
	}{
		{name: "Standard balance", balance: "300000", monthlyRate: 0.02 / 12, expected: "500"},
		{name: "After first installment", balance: "298750", monthlyRate: 0.02 / 12, expected: "497.92"},
		{name: "Zero rate", balance: "100000", monthlyRate: 0, expected: "0"},
		{name: "Zero balance", balance: "0", monthlyRate: 0.05 / 12, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			expected := decimal.RequireFromString(tt.expected)
			if result := Interest(balance, tt.monthlyRate); !result.Equal(expected) {
				t.Errorf("Interest(%s, %v) = %s, expected %s", tt.balance, tt.monthlyRate, result, tt.expected)
			}
		})
	}
}

func TestAnnuity(t *testing.T) {
	tests := []struct {
		name            string
		balance         string
		annualPercent   float64
		remainingMonths int
		expected        string
	}{
		{name: "25-year 3.5% loan", balance: "600000", annualPercent: 3.5, remainingMonths: 300, expected: "3003.74"},
		{name: "20-year 3.2% loan", balance: "500000", annualPercent: 3.2, remainingMonths: 240, expected: "2823.31"},
		{name: "30-year 3.0% loan", balance: "700000", annualPercent: 3.0, remainingMonths: 360, expected: "2951.23"},
		{name: "Zero rate even split", balance: "12000", annualPercent: 0, remainingMonths: 60, expected: "200"},
		{name: "One month remaining", balance: "1000", annualPercent: 6.0, remainingMonths: 1, expected: "1005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			expected := decimal.RequireFromString(tt.expected)
			result := Annuity(balance, mathutil.MonthlyRate(tt.annualPercent), tt.remainingMonths)
			if !result.Equal(expected) {
				t.Errorf("Annuity(%s, %v%%, %d) = %s, expected %s",
					tt.balance, tt.annualPercent, tt.remainingMonths, result, tt.expected)
			}
		})
	}
}

func TestAnnuityExceedsInterest(t *testing.T) {
	// For any positive rate the level payment must cover the first month's
	// interest, otherwise the loan could never amortize.
	balance := decimal.RequireFromString("450000")
	for _, annualPercent := range []float64{0.5, 2.0, 3.5, 7.0, 12.0} {
		monthlyRate := mathutil.MonthlyRate(annualPercent)
		pay := Annuity(balance, monthlyRate, 240)
		interest := Interest(balance, monthlyRate)
		if !pay.GreaterThan(interest) {
			t.Errorf("Annuity payment %s at %v%% does not exceed interest %s", pay, annualPercent, interest)
		}
	}
}

func TestEqualPrincipalInstallment(t *testing.T) {
	tests := []struct {
		name            string
		balance         string
		remainingMonths int
		expected        string
	}{
		{name: "Even division", balance: "300000", remainingMonths: 240, expected: "1250"},
		{name: "Rounded installment", balance: "100000", remainingMonths: 360, expected: "277.78"},
		{name: "One month remaining", balance: "5000", remainingMonths: 1, expected: "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			expected := decimal.RequireFromString(tt.expected)
			if result := EqualPrincipalInstallment(balance, tt.remainingMonths); !result.Equal(expected) {
				t.Errorf("EqualPrincipalInstallment(%s, %d) = %s, expected %s",
					tt.balance, tt.remainingMonths, result, tt.expected)
			}
		})
	}
}

func TestBullet(t *testing.T) {
	balance := decimal.RequireFromString("250000")
	monthlyRate := mathutil.MonthlyRate(4.8)
	interestOnly := decimal.RequireFromString("1000") // 250000 * 0.048 / 12

	if result := Bullet(balance, monthlyRate, 120); !result.Equal(interestOnly) {
		t.Errorf("Bullet mid-term payment = %s, expected %s", result, interestOnly)
	}

	final := Bullet(balance, monthlyRate, 1)
	expected := interestOnly.Add(balance)
	if !final.Equal(expected) {
		t.Errorf("Bullet final payment = %s, expected %s", final, expected)
	}
}
