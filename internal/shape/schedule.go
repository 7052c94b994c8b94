package shape

import "github.com/jstittsworth/puckdata/internal/upstream"

type SchedulePayload struct {
	Days []ScheduleDay `json:"days"`
}

type ScheduleDay struct {
	Date  string          `json:"date"`
	Games []ScheduledGame `json:"games"`
}

type ScheduledGame struct {
	ID        int64        `json:"id"`
	StartTime string       `json:"start_time"`
	State     string       `json:"state"`
	Venue     string       `json:"venue,omitempty"`
	Home      ScheduleSide `json:"home"`
	Away      ScheduleSide `json:"away"`
}

type ScheduleSide struct {
	Abbrev string `json:"abbrev"`
	Place  string `json:"place,omitempty"`
	Score  *int   `json:"score"`
}

// Schedule reshapes game-week days, keeping at most maxDays days.
// Each upstream fetch covers one week; callers fetching several days
// pass the accumulated days through here once.
func Schedule(days []upstream.ScheduleDay, maxDays int) SchedulePayload {
	payload := SchedulePayload{Days: []ScheduleDay{}}
	for i, d := range days {
		if maxDays > 0 && i >= maxDays {
			break
		}
		day := ScheduleDay{Date: d.Date, Games: []ScheduledGame{}}
		for _, g := range d.Games {
			day.Games = append(day.Games, ScheduledGame{
				ID:        g.ID,
				StartTime: g.StartTimeUTC,
				State:     g.GameState,
				Venue:     g.Venue.Default,
				Home:      ScheduleSide{Abbrev: g.HomeTeam.Abbrev, Place: g.HomeTeam.PlaceName.Default, Score: g.HomeTeam.Score},
				Away:      ScheduleSide{Abbrev: g.AwayTeam.Abbrev, Place: g.AwayTeam.PlaceName.Default, Score: g.AwayTeam.Score},
			})
		}
		payload.Days = append(payload.Days, day)
	}
	return payload
}
