package shape

import "github.com/jstittsworth/puckdata/internal/upstream"

type RosterPayload struct {
	Team    string        `json:"team"`
	Players []RosterEntry `json:"players"`
}

type RosterEntry struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	Shoots   string `json:"shoots,omitempty"`
	Headshot string `json:"headshot,omitempty"`
}

// Roster flattens forwards, defensemen, and goalies into one list in
// that order. Players is always a list, never null.
func Roster(abbrev string, resp *upstream.RosterResponse) RosterPayload {
	payload := RosterPayload{Team: abbrev, Players: []RosterEntry{}}
	if resp == nil {
		return payload
	}
	appendGroup := func(players []upstream.RosterPlayer, fallbackPos string) {
		for _, p := range players {
			pos := p.PositionCode
			if pos == "" {
				pos = fallbackPos
			}
			payload.Players = append(payload.Players, RosterEntry{
				PlayerID: p.ID,
				Name:     playerName(p.FirstName.Default, p.LastName.Default),
				Number:   p.SweaterNumber,
				Position: pos,
				Shoots:   p.ShootsCatches,
				Headshot: p.Headshot,
			})
		}
	}
	appendGroup(resp.Forwards, "F")
	appendGroup(resp.Defensemen, "D")
	appendGroup(resp.Goalies, "G")
	return payload
}
