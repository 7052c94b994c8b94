package upstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LocalizedString is the {"default": "..."} wrapper the NHL API uses
// for every display string.
type LocalizedString struct {
	Default string `json:"default"`
}

// NHLClient wraps the api-web.nhle.com/v1 endpoints this service uses.
type NHLClient struct {
	client *Client
}

func NewNHLClient(baseURL string, timeout time.Duration, rps, breakerThreshold int, logger *logrus.Logger) *NHLClient {
	return &NHLClient{
		client: NewClient("nhl", baseURL, timeout, rps, breakerThreshold, logger),
	}
}

// NHL API response structures

type StandingsResponse struct {
	Standings []StandingsTeam `json:"standings"`
}

type StandingsTeam struct {
	TeamName         LocalizedString `json:"teamName"`
	TeamCommonName   LocalizedString `json:"teamCommonName"`
	TeamAbbrev       LocalizedString `json:"teamAbbrev"`
	ConferenceAbbrev string          `json:"conferenceAbbrev"`
	ConferenceName   string          `json:"conferenceName"`
	DivisionAbbrev   string          `json:"divisionAbbrev"`
	DivisionName     string          `json:"divisionName"`
	GamesPlayed      int             `json:"gamesPlayed"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	OtLosses         int             `json:"otLosses"`
	Points           int             `json:"points"`
	GoalFor          int             `json:"goalFor"`
	GoalAgainst      int             `json:"goalAgainst"`
	GoalDifferential int             `json:"goalDifferential"`
	L10Wins          int             `json:"l10Wins"`
	L10Losses        int             `json:"l10Losses"`
	L10OtLosses      int             `json:"l10OtLosses"`
	StreakCode       string          `json:"streakCode"`
	StreakCount      int             `json:"streakCount"`
	WinPctg          float64         `json:"winPctg"`
}

type LeaderEntry struct {
	ID            int64           `json:"id"`
	FirstName     LocalizedString `json:"firstName"`
	LastName      LocalizedString `json:"lastName"`
	TeamAbbrev    string          `json:"teamAbbrev"`
	TeamName      LocalizedString `json:"teamName"`
	SweaterNumber int             `json:"sweaterNumber"`
	Position      string          `json:"position"`
	Headshot      string          `json:"headshot"`
	Value         float64         `json:"value"`
}

type RosterResponse struct {
	Forwards   []RosterPlayer `json:"forwards"`
	Defensemen []RosterPlayer `json:"defensemen"`
	Goalies    []RosterPlayer `json:"goalies"`
}

type RosterPlayer struct {
	ID            int64           `json:"id"`
	FirstName     LocalizedString `json:"firstName"`
	LastName      LocalizedString `json:"lastName"`
	SweaterNumber int             `json:"sweaterNumber"`
	PositionCode  string          `json:"positionCode"`
	ShootsCatches string          `json:"shootsCatches"`
	Headshot      string          `json:"headshot"`
	BirthCity     LocalizedString `json:"birthCity"`
	BirthCountry  string          `json:"birthCountry"`
}

type PlayerLanding struct {
	PlayerID           int64           `json:"playerId"`
	FirstName          LocalizedString `json:"firstName"`
	LastName           LocalizedString `json:"lastName"`
	TeamAbbrev         string          `json:"currentTeamAbbrev"`
	SweaterNumber      int             `json:"sweaterNumber"`
	Position           string          `json:"position"`
	Headshot           string          `json:"headshot"`
	HeroImage          string          `json:"heroImage"`
	ShootsCatches      string          `json:"shootsCatches"`
	HeightInInches     int             `json:"heightInInches"`
	WeightInPounds     int             `json:"weightInPounds"`
	BirthDate          string          `json:"birthDate"`
	BirthCity          LocalizedString `json:"birthCity"`
	BirthStateProvince LocalizedString `json:"birthStateProvince"`
	BirthCountry       string          `json:"birthCountry"`
	FeaturedStats      struct {
		Season        int64 `json:"season"`
		RegularSeason struct {
			SubSeason struct {
				GamesPlayed     int     `json:"gamesPlayed"`
				Goals           int     `json:"goals"`
				Assists         int     `json:"assists"`
				Points          int     `json:"points"`
				PlusMinus       int     `json:"plusMinus"`
				PIM             int     `json:"pim"`
				Shots           int     `json:"shots"`
				Wins            int     `json:"wins"`
				Losses          int     `json:"losses"`
				SavePctg        float64 `json:"savePctg"`
				GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
				Shutouts        int     `json:"shutouts"`
			} `json:"subSeason"`
		} `json:"regularSeason"`
	} `json:"featuredStats"`
}

type ScheduleResponse struct {
	GameWeek []ScheduleDay `json:"gameWeek"`
}

type ScheduleDay struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	ID           int64           `json:"id"`
	StartTimeUTC string          `json:"startTimeUTC"`
	GameState    string          `json:"gameState"`
	Venue        LocalizedString `json:"venue"`
	HomeTeam     ScheduleTeam    `json:"homeTeam"`
	AwayTeam     ScheduleTeam    `json:"awayTeam"`
}

type ScheduleTeam struct {
	ID        int64           `json:"id"`
	Abbrev    string          `json:"abbrev"`
	PlaceName LocalizedString `json:"placeName"`
	Score     *int            `json:"score"`
}

// Standings fetches league standings. An empty date means current
// standings; otherwise date is YYYY-MM-DD.
func (c *NHLClient) Standings(ctx context.Context, date string) (*StandingsResponse, error) {
	path := "/standings/now"
	if date != "" {
		path = "/standings/" + date
	}
	var resp StandingsResponse
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SkaterLeaders fetches the current skater leaders for one category
// (goals, assists, points). Results arrive pre-ranked by the upstream.
func (c *NHLClient) SkaterLeaders(ctx context.Context, category string, limit int) ([]LeaderEntry, error) {
	path := fmt.Sprintf("/skater-stats-leaders/current?categories=%s&limit=%d", category, limit)
	var resp map[string][]LeaderEntry
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp[category], nil
}

// GoalieLeaders fetches the current goalie leaders for one category
// (wins, savePctg, goalsAgainstAverage, shutouts).
func (c *NHLClient) GoalieLeaders(ctx context.Context, category string, limit int) ([]LeaderEntry, error) {
	path := fmt.Sprintf("/goalie-stats-leaders/current?categories=%s&limit=%d", category, limit)
	var resp map[string][]LeaderEntry
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp[category], nil
}

// Roster fetches the current-season roster for a team abbreviation.
func (c *NHLClient) Roster(ctx context.Context, abbrev string) (*RosterResponse, error) {
	path := fmt.Sprintf("/roster/%s/%s", strings.ToLower(abbrev), currentSeasonID())
	var resp RosterResponse
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Player fetches the landing payload for one player.
func (c *NHLClient) Player(ctx context.Context, playerID int64) (*PlayerLanding, error) {
	path := fmt.Sprintf("/player/%d/landing", playerID)
	var resp PlayerLanding
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Schedule fetches the game week starting at date (YYYY-MM-DD).
func (c *NHLClient) Schedule(ctx context.Context, date string) (*ScheduleResponse, error) {
	path := "/schedule/" + date
	var resp ScheduleResponse
	if err := c.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// currentSeasonID returns the active NHL season ID like 20252026.
// The season rolls over in September.
func currentSeasonID() string {
	now := time.Now().UTC()
	year := now.Year()
	if now.Month() >= time.September {
		return fmt.Sprintf("%d%d", year, year+1)
	}
	return fmt.Sprintf("%d%d", year-1, year)
}
