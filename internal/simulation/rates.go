package simulation

import "sort"

// EffectiveRatePercent resolves the nominal annual rate (in percent) active
// for the record computed at the given month: the track's base rate plus all
// deltas whose effective month is at or before that month, applied
// cumulatively in ascending month order. A change declared at month m is
// visible starting at month m's record; it never retroactively recomputes
// months already finalized.
//
// Two changes sharing the same effective month are ambiguous and rejected.
func EffectiveRatePercent(track *Track, month int) (float64, error) {
	changes := make([]RateChange, len(track.RateChanges))
	copy(changes, track.RateChanges)
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Month < changes[j].Month })

	rate := track.BaseRatePercent()
	for i, rc := range changes {
		if i > 0 && changes[i-1].Month == rc.Month {
			return 0, &ConfigurationError{
				TrackID: track.Key(),
				Month:   rc.Month,
				Reason:  "conflicting rate changes share the same effective month",
			}
		}
		if rc.Month <= month {
			rate += rc.DeltaPercent
		}
	}
	return rate, nil
}
