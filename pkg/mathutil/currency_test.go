package mathutil

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Round down", input: "100.124", expected: "100.12"},
		{name: "Round up", input: "100.125", expected: "100.13"},
		{name: "Already cents", input: "100.12", expected: "100.12"},
		{name: "Negative value", input: "-3.005", expected: "-3.01"},
		{name: "Zero", input: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decimal.RequireFromString(tt.input)
			expected := decimal.RequireFromString(tt.expected)
			if result := RoundCents(input); !result.Equal(expected) {
				t.Errorf("RoundCents(%s) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Exact zero", input: "0", expected: true},
		{name: "One cent", input: "0.01", expected: true},
		{name: "Negative cent", input: "-0.01", expected: true},
		{name: "Above tolerance", input: "0.02", expected: false},
		{name: "Large balance", input: "500000", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(decimal.RequireFromString(tt.input)); result != tt.expected {
				t.Errorf("IsZero(%s) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsPositive(t *testing.T) {
	if IsPositive(decimal.RequireFromString("0.01")) {
		t.Errorf("IsPositive(0.01) = true, expected false (within cent tolerance)")
	}
	if !IsPositive(decimal.RequireFromString("0.02")) {
		t.Errorf("IsPositive(0.02) = false, expected true")
	}
}

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		name          string
		annualPercent float64
		expected      float64
	}{
		{name: "Standard mortgage rate", annualPercent: 3.5, expected: 0.035 / 12},
		{name: "Zero rate", annualPercent: 0, expected: 0},
		{name: "High rate", annualPercent: 12, expected: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := MonthlyRate(tt.annualPercent); math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("MonthlyRate(%v) = %v, expected %v", tt.annualPercent, result, tt.expected)
			}
		})
	}
}

func TestMonthlyIndexFactor(t *testing.T) {
	// 2% annual inflation compounds to exactly 2% over 12 months.
	factor := MonthlyIndexFactor(2.0)
	annual := math.Pow(factor, 12)
	if math.Abs(annual-1.02) > 1e-9 {
		t.Errorf("MonthlyIndexFactor(2.0)^12 = %v, expected 1.02", annual)
	}

	if factor := MonthlyIndexFactor(0); factor != 1.0 {
		t.Errorf("MonthlyIndexFactor(0) = %v, expected exactly 1.0", factor)
	}
}

func TestMinMax(t *testing.T) {
	a := decimal.RequireFromString("10.00")
	b := decimal.RequireFromString("20.00")
	if !Min(a, b).Equal(a) {
		t.Errorf("Min(10, 20) = %s, expected 10", Min(a, b))
	}
	if !Max(a, b).Equal(b) {
		t.Errorf("Max(10, 20) = %s, expected 20", Max(a, b))
	}
}

func TestWithinTolerance(t *testing.T) {
	a := decimal.RequireFromString("100.00")
	b := decimal.RequireFromString("100.01")
	if !WithinTolerance(a, b, CentEpsilon) {
		t.Errorf("WithinTolerance(100.00, 100.01, cent) = false, expected true")
	}
	if WithinTolerance(a, decimal.RequireFromString("100.02"), CentEpsilon) {
		t.Errorf("WithinTolerance(100.00, 100.02, cent) = true, expected false")
	}
}
