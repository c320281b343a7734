package simulation

import "sort"

// eventKind orders same-month events: rate changes apply before prepayments.
type eventKind int

const (
	kindRateChange eventKind = iota
	kindPrepayment
)

// trackEvent is one entry in a track's chronologically merged event queue.
// The explicit (month, kind) ordering key makes the same-month tie-break a
// defined rule rather than an artifact of config list order.
type trackEvent struct {
	month      int
	kind       eventKind
	rateChange RateChange
	prepayment Prepayment
}

// buildEventQueue merges a track's rate-change and prepayment events into a
// single queue sorted by (month, kind). The sort is stable so multiple
// prepayments in the same month retain their declared order.
func buildEventQueue(track *Track) []trackEvent {
	queue := make([]trackEvent, 0, len(track.RateChanges)+len(track.Prepayments))
	for _, rc := range track.RateChanges {
		queue = append(queue, trackEvent{month: rc.Month, kind: kindRateChange, rateChange: rc})
	}
	for _, pp := range track.Prepayments {
		queue = append(queue, trackEvent{month: pp.Month, kind: kindPrepayment, prepayment: pp})
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].month != queue[j].month {
			return queue[i].month < queue[j].month
		}
		return queue[i].kind < queue[j].kind
	})
	return queue
}
