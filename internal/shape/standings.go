// Package shape holds the pure transforms from raw upstream JSON to
// the output contracts of each operation. Shapers never fetch and
// never fail: missing upstream fields map to documented defaults.
package shape

import (
	"fmt"
	"strings"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

type TeamStanding struct {
	Team         string  `json:"team"`
	Abbrev       string  `json:"abbrev"`
	Conference   string  `json:"conference"`
	Division     string  `json:"division"`
	GamesPlayed  int     `json:"games_played"`
	Record       string  `json:"record"`
	Points       int     `json:"points"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	GoalDiff     int     `json:"goal_diff"`
	LastTen      string  `json:"last_ten"`
	Streak       string  `json:"streak"`
	WinPct       float64 `json:"win_pct"`
}

// Standings reshapes the raw standings, optionally filtered to one
// conference ("eastern"/"western") and/or one division. Filters are
// case insensitive. Upstream order is preserved.
func Standings(resp *upstream.StandingsResponse, conference, division string) []TeamStanding {
	out := []TeamStanding{}
	if resp == nil {
		return out
	}

	// Upstream tags conference as "E"/"W" in conferenceAbbrev; the
	// full name appears only in some season phases.
	confInitial := ""
	if conference != "" {
		confInitial = strings.ToUpper(conference[:1])
	}

	for _, t := range resp.Standings {
		if confInitial != "" &&
			!strings.EqualFold(t.ConferenceAbbrev, confInitial) &&
			!strings.EqualFold(t.ConferenceName, conference) {
			continue
		}
		if division != "" && !strings.EqualFold(t.DivisionName, division) {
			continue
		}
		out = append(out, TeamStanding{
			Team:         t.TeamName.Default,
			Abbrev:       t.TeamAbbrev.Default,
			Conference:   t.ConferenceName,
			Division:     t.DivisionName,
			GamesPlayed:  t.GamesPlayed,
			Record:       fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.OtLosses),
			Points:       t.Points,
			GoalsFor:     t.GoalFor,
			GoalsAgainst: t.GoalAgainst,
			GoalDiff:     goalDiff(t),
			LastTen:      lastTen(t),
			Streak:       streak(t),
			WinPct:       t.WinPctg,
		})
	}
	return out
}

func goalDiff(t upstream.StandingsTeam) int {
	if t.GoalDifferential != 0 {
		return t.GoalDifferential
	}
	return t.GoalFor - t.GoalAgainst
}

// streak renders streakCode+streakCount, e.g. "W4". Missing either
// part yields "".
func streak(t upstream.StandingsTeam) string {
	if t.StreakCode == "" || t.StreakCount == 0 {
		return ""
	}
	return fmt.Sprintf("%s%d", strings.ToUpper(t.StreakCode), t.StreakCount)
}

func lastTen(t upstream.StandingsTeam) string {
	if t.L10Wins == 0 && t.L10Losses == 0 && t.L10OtLosses == 0 {
		return ""
	}
	return fmt.Sprintf("%d-%d-%d", t.L10Wins, t.L10Losses, t.L10OtLosses)
}
