package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func newTestClients(t *testing.T, nhlHandler, espnHandler http.HandlerFunc) (*upstream.NHLClient, *upstream.ESPNClient) {
	t.Helper()
	nhlServer := httptest.NewServer(nhlHandler)
	t.Cleanup(nhlServer.Close)
	espnServer := httptest.NewServer(espnHandler)
	t.Cleanup(espnServer.Close)

	logger := testLogger()
	nhl := upstream.NewNHLClient(nhlServer.URL, 5*time.Second, 100, 100, logger)
	espn := upstream.NewESPNClient(espnServer.URL, 5*time.Second, 100, 100, logger)
	return nhl, espn
}

func newHockeyRouter(nhl *upstream.NHLClient, espn *upstream.ESPNClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHockeyHandler(nhl, espn, testLogger())
	router := gin.New()
	router.GET("/standings", handler.GetStandings)
	router.GET("/leaders", handler.GetLeaders)
	router.GET("/scores", handler.GetScores)
	router.GET("/schedule", handler.GetSchedule)
	router.GET("/report/daily", handler.GetDailyReport)
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const standingsBody = `{"standings": [
	{"teamName": {"default": "Boston Bruins"}, "teamAbbrev": {"default": "BOS"}, "conferenceAbbrev": "E", "conferenceName": "Eastern", "divisionName": "Atlantic", "wins": 35, "losses": 10, "otLosses": 5, "points": 75},
	{"teamName": {"default": "Colorado Avalanche"}, "teamAbbrev": {"default": "COL"}, "conferenceAbbrev": "W", "conferenceName": "Western", "divisionName": "Central", "wins": 30, "losses": 15, "otLosses": 5, "points": 65}
]}`

func TestGetStandings(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/standings/now", r.URL.Path)
			w.Write([]byte(standingsBody))
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	w := doRequest(router, "GET", "/standings?conference=eastern")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	standings := data["standings"].([]interface{})
	require.Len(t, standings, 1)
	row := standings[0].(map[string]interface{})
	assert.Equal(t, "BOS", row["abbrev"])
	assert.Equal(t, "35-10-5", row["record"])
}

func TestGetStandingsRejectsBadConference(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("validation failures must not reach the upstream")
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	w := doRequest(router, "GET", "/standings?conference=northern")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["success"])
}

func TestGetStandingsUpstreamFailureIs502(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	w := doRequest(router, "GET", "/standings")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	body := decodeEnvelope(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Contains(t, errObj["details"], "503")
}

func TestGetLeadersDefaultsAndDispatch(t *testing.T) {
	var gotPath string
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			category := r.URL.Query().Get("categories")
			w.Write([]byte(`{"` + category + `": [{"id": 1, "firstName": {"default": "Connor"}, "lastName": {"default": "McDavid"}, "teamAbbrev": "EDM", "value": 152}]}`))
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	// Default category is points, a skater stat.
	w := doRequest(router, "GET", "/leaders")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/skater-stats-leaders/current", gotPath)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "points", data["category"])
	leaders := data["leaders"].([]interface{})
	require.Len(t, leaders, 1)
	first := leaders[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "Connor McDavid", first["name"])

	// Goalie categories route to the goalie endpoint.
	w = doRequest(router, "GET", "/leaders?category=wins")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/goalie-stats-leaders/current", gotPath)
}

func TestGetLeadersRejectsBadCategory(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/leaders?category=hits").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/leaders?limit=0").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/leaders?limit=51").Code)
}

func TestGetScores(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "20260115", r.URL.Query().Get("dates"))
			w.Write([]byte(`{"events": [{"id": "1", "shortName": "BOS @ TOR", "status": {"type": {"state": "in"}}, "competitions": [{"competitors": [
				{"homeAway": "home", "score": "2", "team": {"abbreviation": "TOR"}},
				{"homeAway": "away", "score": "1", "team": {"abbreviation": "BOS"}}
			]}]}]}`))
		},
	)
	router := newHockeyRouter(nhl, espn)

	w := doRequest(router, "GET", "/scores?date=20260115")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	games := data["games"].([]interface{})
	require.Len(t, games, 1)
	game := games[0].(map[string]interface{})
	home := game["home"].(map[string]interface{})
	assert.Equal(t, "TOR", home["abbrev"])
	assert.Equal(t, float64(2), home["score"])
}

func TestGetScoresRejectsBadDate(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/scores?date=2026-01-15").Code)
}

func TestGetSchedule(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			// Echo back a week containing the requested day.
			date := r.URL.Path[len("/schedule/"):]
			w.Write([]byte(`{"gameWeek": [{"date": "` + date + `", "games": [{"id": 1, "gameState": "FUT", "homeTeam": {"abbrev": "BOS"}, "awayTeam": {"abbrev": "TOR"}}]}]}`))
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newHockeyRouter(nhl, espn)

	w := doRequest(router, "GET", "/schedule?date=2026-01-15&days=2")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	days := data["days"].([]interface{})
	require.Len(t, days, 2)
	first := days[0].(map[string]interface{})
	assert.Equal(t, "2026-01-15", first["date"])
	second := days[1].(map[string]interface{})
	assert.Equal(t, "2026-01-16", second["date"])
}

func TestGetDailyReportDegradesBestEffort(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/standings/now":
				w.Write([]byte(standingsBody))
			case "/skater-stats-leaders/current":
				w.Write([]byte(`{"points": [{"id": 1, "firstName": {"default": "Connor"}, "lastName": {"default": "McDavid"}, "teamAbbrev": "EDM", "value": 152}]}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		},
		func(w http.ResponseWriter, r *http.Request) {
			// Scores and news are down; the report still succeeds.
			w.WriteHeader(http.StatusInternalServerError)
		},
	)
	router := newHockeyRouter(nhl, espn)

	w := doRequest(router, "GET", "/report/daily")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["standings"].([]interface{}), 2)
	assert.Len(t, data["leaders"].([]interface{}), 1)

	scores := data["scores"].(map[string]interface{})
	assert.Empty(t, scores["games"].([]interface{}))
	assert.Empty(t, data["headlines"].([]interface{}))
}

func TestGetDailyReportRequiredFailureIs502(t *testing.T) {
	nhl, espn := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"events": []}`))
		},
	)
	router := newHockeyRouter(nhl, espn)

	assert.Equal(t, http.StatusBadGateway, doRequest(router, "GET", "/report/daily").Code)
}
