package fixtures

import (
	"sort"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
)

// recentForm returns the team's last finished matches within its competition:
// status Final or FT, kicked off strictly before the target match, most
// recent first, at most five entries, with the team on either side.
func recentForm(league []matches.Match, target matches.Match, team string) []matches.Match {
	finished := make([]matches.Match, 0)
	for _, m := range league {
		if !m.Status.IsFinished() {
			continue
		}
		if !m.Kickoff.Before(target.Kickoff) {
			continue
		}
		if !m.Involves(team) {
			continue
		}
		finished = append(finished, m)
	}

	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].Kickoff.After(finished[j].Kickoff)
	})

	if len(finished) > formLength {
		finished = finished[:formLength]
	}
	return finished
}
