package shortsdata

import (
	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/standings"
	"github.com/gowrapavan/goal4u-data-service/internal/timeutil"
)

// normalizeMatch maps one raw fixture entry into the canonical match shape.
// Synonym fields resolve first-present-wins; a missing status defaults to
// Scheduled and missing scores stay nil.
func normalizeMatch(r rawMatch, code, name string) matches.Match {
	status := matches.Status(r.Status)
	if r.Status == "" {
		status = matches.StatusScheduled
	}

	return matches.Match{
		ID:              string(r.GameID),
		CompetitionCode: code,
		CompetitionName: name,
		HomeTeam:        firstNonEmpty(r.HomeTeamName, r.HomeTeam),
		AwayTeam:        firstNonEmpty(r.AwayTeamName, r.AwayTeam),
		HomeScore:       r.HomeScore,
		AwayScore:       r.AwayScore,
		Kickoff:         timeutil.ParseKickoff(firstNonEmpty(r.DateTime, r.Date)),
		Status:          status,
		HomeLogo:        r.HomeLogo,
		AwayLogo:        r.AwayLogo,
	}
}

// flattenStandings unwraps standings[0].table into flat rows. Any missing
// level yields an empty slice.
func flattenStandings(raw rawStandings) []standings.Row {
	if len(raw.Standings) == 0 {
		return []standings.Row{}
	}
	table := raw.Standings[0].Table
	rows := make([]standings.Row, 0, len(table))
	for _, entry := range table {
		rows = append(rows, standings.Row{
			Position:  entry.Position,
			TeamName:  entry.Team.Name,
			ShortName: entry.Team.ShortName,
			Played:    entry.PlayedGames,
			Points:    entry.Points,
			Won:       entry.Won,
			Draw:      entry.Draw,
			Lost:      entry.Lost,
			Crest:     entry.Team.Crest,
		})
	}
	return rows
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
