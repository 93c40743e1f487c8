package matches

import "time"

// DefaultFullTimeAfter is how long after kickoff a match is presumed over.
// Roughly one match including half-time and stoppage; configurable because
// the feed's own status field lags well behind the clock.
const DefaultFullTimeAfter = 2 * time.Hour

// DeriveStatus re-derives a match status from wall-clock distance to kickoff.
// The upstream feeds refresh status infrequently, so elapsed time fills the
// gap between data refreshes:
//
//   - at or past the full-time threshold the match is forced to FT, whatever
//     the feed says;
//   - inside the window after kickoff it is forced to Live, unless the feed
//     already marked it Final, FT, or HT (an explicit finished/half-time
//     signal is trusted over the heuristic);
//   - before kickoff, or when the kickoff is unknown, the feed value stands.
func DeriveStatus(m Match, now time.Time, fullTimeAfter time.Duration) Status {
	if m.Kickoff.IsZero() {
		return m.Status
	}
	if fullTimeAfter <= 0 {
		fullTimeAfter = DefaultFullTimeAfter
	}

	elapsed := now.Sub(m.Kickoff)
	switch {
	case elapsed >= fullTimeAfter:
		return StatusFullTime
	case elapsed > 0:
		if m.Status.IsFinished() || m.Status == StatusHalfTime {
			return m.Status
		}
		return StatusLive
	default:
		return m.Status
	}
}

// OverrideStatuses applies DeriveStatus across a day's matches in place.
func OverrideStatuses(ms []Match, now time.Time, fullTimeAfter time.Duration) {
	for i := range ms {
		ms[i].Status = DeriveStatus(ms[i], now, fullTimeAfter)
	}
}
