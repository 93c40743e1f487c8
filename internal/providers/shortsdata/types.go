package shortsdata

import (
	"bytes"
	"strconv"
)

// rawMatch is one entry of a competition's fixture file. The host mirrors two
// upstream schema generations, so several fields exist under two names;
// normalization takes the first present.
type rawMatch struct {
	GameID       flexibleID `json:"GameId"`
	DateTime     string     `json:"DateTime"`
	Date         string     `json:"Date"`
	HomeTeamName string     `json:"HomeTeamName"`
	HomeTeam     string     `json:"HomeTeam"`
	AwayTeamName string     `json:"AwayTeamName"`
	AwayTeam     string     `json:"AwayTeam"`
	HomeScore    *int       `json:"HomeTeamScore"`
	AwayScore    *int       `json:"AwayTeamScore"`
	Status       string     `json:"Status"`
	HomeLogo     string     `json:"HomeTeamLogo"`
	AwayLogo     string     `json:"AwayTeamLogo"`
}

// flexibleID tolerates ids encoded as either JSON numbers or strings.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = flexibleID(unquoted)
		return nil
	}
	*f = flexibleID(data)
	return nil
}

// rawStandings mirrors the nested standings file shape. Every level may be
// missing; flattening treats any violation as an empty table.
type rawStandings struct {
	Standings []rawStandingsGroup `json:"standings"`
}

type rawStandingsGroup struct {
	Table []rawStandingsEntry `json:"table"`
}

type rawStandingsEntry struct {
	Position    int     `json:"position"`
	Team        rawTeam `json:"team"`
	PlayedGames int     `json:"playedGames"`
	Points      int     `json:"points"`
	Won         int     `json:"won"`
	Draw        int     `json:"draw"`
	Lost        int     `json:"lost"`
}

type rawTeam struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Crest     string `json:"crest"`
}
