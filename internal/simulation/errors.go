package simulation

import "fmt"

// ConfigurationError reports an invalid track configuration detected before
// simulation begins: no partial schedule is ever produced for it.
type ConfigurationError struct {
	TrackID string
	// Month is the offending event month when the error is month-specific,
	// zero otherwise.
	Month  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Month > 0 {
		return fmt.Sprintf("track %s: month %d: %s", e.TrackID, e.Month, e.Reason)
	}
	return fmt.Sprintf("track %s: %s", e.TrackID, e.Reason)
}

// AmortizationError reports a track that cannot reach zero balance within its
// term. The partial schedule is discarded rather than returned inconsistently.
type AmortizationError struct {
	TrackID string
	Month   int
	Reason  string
}

func (e *AmortizationError) Error() string {
	return fmt.Sprintf("track %s: month %d: %s", e.TrackID, e.Month, e.Reason)
}
