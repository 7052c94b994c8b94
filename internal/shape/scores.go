package shape

import (
	"strconv"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

type ScoresPayload struct {
	Games []Game `json:"games"`
}

type Game struct {
	ID        string   `json:"id"`
	StartTime string   `json:"start_time"`
	Name      string   `json:"name"`
	State     string   `json:"state"`
	Detail    string   `json:"detail,omitempty"`
	Home      GameSide `json:"home"`
	Away      GameSide `json:"away"`
}

type GameSide struct {
	Team   string `json:"team"`
	Abbrev string `json:"abbrev"`
	Score  *int   `json:"score"`
	Winner bool   `json:"winner,omitempty"`
}

// Scoreboard reshapes the ESPN scoreboard into the games contract.
// Events with no competition entry still appear with empty sides;
// games is always a list, never null.
func Scoreboard(resp *upstream.ScoreboardResponse) ScoresPayload {
	payload := ScoresPayload{Games: []Game{}}
	if resp == nil {
		return payload
	}
	for _, ev := range resp.Events {
		game := Game{
			ID:        ev.ID,
			StartTime: ev.Date,
			Name:      ev.ShortName,
			State:     ev.Status.Type.State,
			Detail:    ev.Status.Type.ShortDetail,
		}
		if len(ev.Competitions) > 0 {
			for _, comp := range ev.Competitions[0].Competitors {
				side := GameSide{
					Team:   comp.Team.DisplayName,
					Abbrev: comp.Team.Abbreviation,
					Score:  parseScore(comp.Score),
					Winner: comp.Winner,
				}
				switch comp.HomeAway {
				case "home":
					game.Home = side
				case "away":
					game.Away = side
				}
			}
		}
		payload.Games = append(payload.Games, game)
	}
	return payload
}

// parseScore turns ESPN's string score into an int, nil when absent
// or malformed (pre-game events carry "").
func parseScore(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
