package datetime

import "testing"

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
		wantErr  bool
	}{
		{name: "zero offset", date: "2026-01", months: 0, expected: "2026-01"},
		{name: "within year", date: "2026-01", months: 5, expected: "2026-06"},
		{name: "year rollover", date: "2026-11", months: 3, expected: "2027-02"},
		{name: "negative offset", date: "2026-01", months: -1, expected: "2025-12"},
		{name: "unparseable date", date: "January 2026", months: 1, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := OffsetDate(test.date, DateTimeLayout, test.months)
			if test.wantErr {
				if err == nil {
					t.Errorf("OffsetDate(%q) expected error, got none", test.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("OffsetDate(%q) unexpected error: %v", test.date, err)
			}
			if result != test.expected {
				t.Errorf("OffsetDate(%q, %d) = %q, expected %q", test.date, test.months, result, test.expected)
			}
		})
	}
}

func TestMonthLabel(t *testing.T) {
	label, err := MonthLabel("2026-08", 1)
	if err != nil {
		t.Fatalf("MonthLabel unexpected error: %v", err)
	}
	if label != "2026-08" {
		t.Errorf("MonthLabel month 1 = %q, expected start date itself", label)
	}

	label, err = MonthLabel("2026-08", 18)
	if err != nil {
		t.Fatalf("MonthLabel unexpected error: %v", err)
	}
	if label != "2028-01" {
		t.Errorf("MonthLabel month 18 = %q, expected 2028-01", label)
	}
}
