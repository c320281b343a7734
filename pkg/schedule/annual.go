package schedule

import (
	"github.com/daniel1mor3055/real-estate-investing/pkg/constants"
)

// ToAnnual rolls a monthly schedule into consecutive 12-month blocks, summing
// payment, interest, and principal within each block and taking the closing
// balance of the block's last month. A final partial block is produced when
// the schedule does not end on a year boundary.
func ToAnnual(monthly []MonthlyRecord) []AnnualRecord {
	if len(monthly) == 0 {
		return nil
	}

	annual := make([]AnnualRecord, 0, (len(monthly)+constants.MonthsPerYear-1)/constants.MonthsPerYear)
	var current AnnualRecord

	for i, record := range monthly {
		if current.Months == 0 {
			current.Year = i/constants.MonthsPerYear + 1
		}
		current.Payment = current.Payment.Add(record.Payment)
		current.Interest = current.Interest.Add(record.Interest)
		current.Principal = current.Principal.Add(record.Principal)
		current.ClosingBalance = record.Balance
		current.Months++

		if current.Months == constants.MonthsPerYear {
			annual = append(annual, current)
			current = AnnualRecord{}
		}
	}
	if current.Months > 0 {
		annual = append(annual, current)
	}

	return annual
}
