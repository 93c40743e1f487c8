package matches

import "sort"

// displayTier classifies a match for home-page ordering: live fixtures first,
// then upcoming, then everything concluded (FT, Final, HT fall-through).
func displayTier(m Match) int {
	switch m.Status {
	case StatusLive:
		return 1
	case StatusScheduled:
		return 2
	default:
		return 3
	}
}

// SortForDisplay orders a day's matches for the home page: ascending tier,
// then a tier-specific kickoff rule. Live matches sort by ascending kickoff
// (longest-running on top), scheduled by ascending kickoff (soonest first),
// finished by descending kickoff (most recently concluded first). The sort is
// stable so equal keys keep their incoming order.
func SortForDisplay(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		tierA, tierB := displayTier(a), displayTier(b)
		if tierA != tierB {
			return tierA < tierB
		}
		if tierA == 3 {
			return a.Kickoff.After(b.Kickoff)
		}
		return a.Kickoff.Before(b.Kickoff)
	})
}

// feedTier is the coarser ordering used straight after aggregation, before
// the status override runs. Unknown statuses (including HT) group with
// Scheduled.
func feedTier(m Match) int {
	switch m.Status {
	case StatusLive:
		return 0
	case StatusScheduled:
		return 1
	case StatusFinal, StatusFullTime:
		return 2
	default:
		return 1
	}
}

// SortByFeedOrder applies the simple status-tier sort used on freshly
// aggregated matches: Live, then Scheduled, then finished, ties broken by
// ascending kickoff.
func SortByFeedOrder(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		if feedTier(a) != feedTier(b) {
			return feedTier(a) < feedTier(b)
		}
		return a.Kickoff.Before(b.Kickoff)
	})
}
