package shape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

func decodeLanding(t *testing.T, raw string) *upstream.PlayerLanding {
	t.Helper()
	var landing upstream.PlayerLanding
	require.NoError(t, json.Unmarshal([]byte(raw), &landing))
	return &landing
}

func TestPlayerSkaterProfile(t *testing.T) {
	landing := decodeLanding(t, `{
		"playerId": 8478402,
		"firstName": {"default": "Connor"},
		"lastName": {"default": "McDavid"},
		"currentTeamAbbrev": "EDM",
		"sweaterNumber": 97,
		"position": "C",
		"shootsCatches": "L",
		"heightInInches": 73,
		"weightInPounds": 194,
		"birthDate": "1997-01-13",
		"birthCity": {"default": "Richmond Hill"},
		"birthStateProvince": {"default": "Ontario"},
		"birthCountry": "CAN",
		"featuredStats": {"regularSeason": {"subSeason": {
			"gamesPlayed": 76, "goals": 32, "assists": 68, "points": 100, "plusMinus": 21, "pim": 30, "shots": 250
		}}}
	}`)

	profile := Player(landing)
	assert.Equal(t, int64(8478402), profile.PlayerID)
	assert.Equal(t, "Connor McDavid", profile.Name)
	assert.Equal(t, "EDM", profile.Team)
	assert.Equal(t, 97, profile.Number)

	require.NotNil(t, profile.BirthDate)
	assert.Equal(t, "1997-01-13", *profile.BirthDate)
	require.NotNil(t, profile.BirthCity)
	assert.Equal(t, "Richmond Hill", *profile.BirthCity)

	require.NotNil(t, profile.Skater)
	assert.Nil(t, profile.Goalie)
	assert.Equal(t, 100, profile.Skater.Points)
	assert.Equal(t, 32, profile.Skater.Goals)
}

func TestPlayerGoalieProfile(t *testing.T) {
	landing := decodeLanding(t, `{
		"playerId": 8480045,
		"firstName": {"default": "Jeremy"},
		"lastName": {"default": "Swayman"},
		"position": "G",
		"featuredStats": {"regularSeason": {"subSeason": {
			"gamesPlayed": 55, "wins": 33, "losses": 15, "savePctg": 0.917, "goalsAgainstAvg": 2.45, "shutouts": 4
		}}}
	}`)

	profile := Player(landing)
	require.NotNil(t, profile.Goalie)
	assert.Nil(t, profile.Skater)
	assert.Equal(t, 33, profile.Goalie.Wins)
	assert.InDelta(t, 0.917, profile.Goalie.SavePct, 0.0001)
	assert.Equal(t, 4, profile.Goalie.Shutouts)
}

func TestPlayerMissingBirthFieldsAreNull(t *testing.T) {
	landing := decodeLanding(t, `{
		"playerId": 1,
		"firstName": {"default": "A"},
		"lastName": {"default": "B"},
		"position": "D"
	}`)

	profile := Player(landing)
	assert.Nil(t, profile.BirthDate)
	assert.Nil(t, profile.BirthCity)
	assert.Nil(t, profile.BirthState)
	assert.Nil(t, profile.BirthCountry)
}

func TestPlayerNilLanding(t *testing.T) {
	profile := Player(nil)
	assert.Equal(t, int64(0), profile.PlayerID)
	assert.Nil(t, profile.Skater)
	assert.Nil(t, profile.Goalie)
}
