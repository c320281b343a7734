// Package datetime provides date utility functions for labeling schedule
// rows with calendar months.
package datetime

import (
	"time"

	"github.com/daniel1mor3055/real-estate-investing/pkg/constants"
)

// DateTimeLayout is the format expected in config files and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthLabel maps a 1-based schedule month index onto a calendar month
// anchored at startDate (YYYY-MM).
func MonthLabel(startDate string, month int) (string, error) {
	return OffsetDate(startDate, DateTimeLayout, month-1)
}
