package shape

import (
	"strings"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

type Leader struct {
	Rank     int     `json:"rank"`
	PlayerID int64   `json:"player_id"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position"`
	Number   int     `json:"number"`
	Value    float64 `json:"value"`
	Headshot string  `json:"headshot,omitempty"`
}

// Leaders ranks the upstream entries 1..n in their given order and
// truncates to limit. The upstream ordering is never re-sorted.
func Leaders(entries []upstream.LeaderEntry, limit int) []Leader {
	out := []Leader{}
	for i, e := range entries {
		if limit > 0 && i >= limit {
			break
		}
		out = append(out, Leader{
			Rank:     i + 1,
			PlayerID: e.ID,
			Name:     playerName(e.FirstName.Default, e.LastName.Default),
			Team:     e.TeamAbbrev,
			Position: e.Position,
			Number:   e.SweaterNumber,
			Value:    e.Value,
			Headshot: e.Headshot,
		})
	}
	return out
}

func playerName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
