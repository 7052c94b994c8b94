package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNHLTestServer(t *testing.T, handler http.HandlerFunc) (*NHLClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewNHLClient(server.URL, 5*time.Second, 100, 5, testLogger()), server
}

func TestStandingsPathSelection(t *testing.T) {
	var gotPath string
	client, _ := newNHLTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"standings": []}`))
	})

	_, err := client.Standings(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/standings/now", gotPath)

	_, err = client.Standings(context.Background(), "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, "/standings/2026-01-15", gotPath)
}

func TestSkaterLeadersExtractsCategory(t *testing.T) {
	client, _ := newNHLTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/skater-stats-leaders/current", r.URL.Path)
		assert.Equal(t, "points", r.URL.Query().Get("categories"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{
			"points": [
				{"id": 8478402, "firstName": {"default": "Connor"}, "lastName": {"default": "McDavid"}, "teamAbbrev": "EDM", "value": 152},
				{"id": 8477934, "firstName": {"default": "Leon"}, "lastName": {"default": "Draisaitl"}, "teamAbbrev": "EDM", "value": 130}
			]
		}`))
	})

	entries, err := client.SkaterLeaders(context.Background(), "points", 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(8478402), entries[0].ID)
	assert.Equal(t, "Connor", entries[0].FirstName.Default)
	assert.Equal(t, float64(152), entries[0].Value)
}

func TestSkaterLeadersMissingCategoryIsEmpty(t *testing.T) {
	client, _ := newNHLTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"goals": []}`))
	})

	entries, err := client.SkaterLeaders(context.Background(), "points", 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlayerLanding(t *testing.T) {
	client, _ := newNHLTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/player/8478402/landing", r.URL.Path)
		w.Write([]byte(`{
			"playerId": 8478402,
			"firstName": {"default": "Connor"},
			"lastName": {"default": "McDavid"},
			"currentTeamAbbrev": "EDM",
			"position": "C",
			"birthDate": "1997-01-13",
			"featuredStats": {"regularSeason": {"subSeason": {"gamesPlayed": 76, "goals": 32, "assists": 68, "points": 100}}}
		}`))
	})

	landing, err := client.Player(context.Background(), 8478402)
	require.NoError(t, err)
	assert.Equal(t, "McDavid", landing.LastName.Default)
	assert.Equal(t, "EDM", landing.TeamAbbrev)
	assert.Equal(t, 100, landing.FeaturedStats.RegularSeason.SubSeason.Points)
}

func TestESPNScoreboardDateParam(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"events": []}`))
	}))
	defer server.Close()
	client := NewESPNClient(server.URL, 5*time.Second, 100, 5, testLogger())

	_, err := client.Scoreboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/scoreboard", gotURL)

	_, err = client.Scoreboard(context.Background(), "20260115")
	require.NoError(t, err)
	assert.Equal(t, "/scoreboard?dates=20260115", gotURL)
}
