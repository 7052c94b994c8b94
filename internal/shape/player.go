package shape

import "github.com/jstittsworth/puckdata/internal/upstream"

type PlayerProfile struct {
	PlayerID   int64        `json:"player_id"`
	Name       string       `json:"name"`
	Team       string       `json:"team"`
	Position   string       `json:"position"`
	Number     int          `json:"number"`
	Shoots     string       `json:"shoots,omitempty"`
	Height     int          `json:"height_inches,omitempty"`
	Weight     int          `json:"weight_pounds,omitempty"`
	BirthDate  *string      `json:"birth_date"`
	BirthCity  *string      `json:"birth_city"`
	BirthState *string      `json:"birth_state_province"`
	BirthCountry *string    `json:"birth_country"`
	Headshot   string       `json:"headshot,omitempty"`
	HeroImage  string       `json:"hero_image,omitempty"`
	Skater     *SkaterStats `json:"skater_stats,omitempty"`
	Goalie     *GoalieStats `json:"goalie_stats,omitempty"`
}

type SkaterStats struct {
	GamesPlayed int `json:"games_played"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	Points      int `json:"points"`
	PlusMinus   int `json:"plus_minus"`
	PIM         int `json:"pim"`
	Shots       int `json:"shots"`
}

type GoalieStats struct {
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	SavePct     float64 `json:"save_pct"`
	GAA         float64 `json:"goals_against_avg"`
	Shutouts    int     `json:"shutouts"`
}

// Player reshapes the landing payload into a profile. Birth fields the
// upstream omits come back as null, not empty strings.
func Player(landing *upstream.PlayerLanding) PlayerProfile {
	if landing == nil {
		return PlayerProfile{}
	}
	profile := PlayerProfile{
		PlayerID:     landing.PlayerID,
		Name:         playerName(landing.FirstName.Default, landing.LastName.Default),
		Team:         landing.TeamAbbrev,
		Position:     landing.Position,
		Number:       landing.SweaterNumber,
		Shoots:       landing.ShootsCatches,
		Height:       landing.HeightInInches,
		Weight:       landing.WeightInPounds,
		BirthDate:    optional(landing.BirthDate),
		BirthCity:    optional(landing.BirthCity.Default),
		BirthState:   optional(landing.BirthStateProvince.Default),
		BirthCountry: optional(landing.BirthCountry),
		Headshot:     landing.Headshot,
		HeroImage:    landing.HeroImage,
	}

	sub := landing.FeaturedStats.RegularSeason.SubSeason
	if landing.Position == "G" {
		profile.Goalie = &GoalieStats{
			GamesPlayed: sub.GamesPlayed,
			Wins:        sub.Wins,
			Losses:      sub.Losses,
			SavePct:     sub.SavePctg,
			GAA:         sub.GoalsAgainstAvg,
			Shutouts:    sub.Shutouts,
		}
	} else {
		profile.Skater = &SkaterStats{
			GamesPlayed: sub.GamesPlayed,
			Goals:       sub.Goals,
			Assists:     sub.Assists,
			Points:      sub.Points,
			PlusMinus:   sub.PlusMinus,
			PIM:         sub.PIM,
			Shots:       sub.Shots,
		}
	}
	return profile
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
