package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

func newTeamRouter(nhl *upstream.NHLClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTeamHandler(nhl, testLogger())
	router := gin.New()
	router.GET("/teams", handler.ListTeams)
	router.GET("/teams/resolve", handler.ResolveTeam)
	router.GET("/teams/:team/roster", handler.GetRoster)
	return router
}

func TestListTeams(t *testing.T) {
	router := newTeamRouter(nil)

	w := doRequest(router, "GET", "/teams")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["teams"].([]interface{}), 32)
}

func TestResolveTeam(t *testing.T) {
	router := newTeamRouter(nil)

	w := doRequest(router, "GET", "/teams/resolve?name=habs")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "MTL", data["abbrev"])
}

func TestResolveTeamUnknownIs404(t *testing.T) {
	router := newTeamRouter(nil)

	assert.Equal(t, http.StatusNotFound, doRequest(router, "GET", "/teams/resolve?name=whalers").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "GET", "/teams/resolve").Code)
}

func TestGetRosterResolvesBeforeFetching(t *testing.T) {
	nhl, _ := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			require.True(t, strings.HasPrefix(r.URL.Path, "/roster/bos/"))
			w.Write([]byte(`{"forwards": [{"id": 1, "firstName": {"default": "David"}, "lastName": {"default": "Pastrnak"}, "sweaterNumber": 88, "positionCode": "R"}], "defensemen": [], "goalies": []}`))
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newTeamRouter(nhl)

	w := doRequest(router, "GET", "/teams/bruins/roster")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "BOS", data["team"])
	players := data["players"].([]interface{})
	require.Len(t, players, 1)
	assert.Equal(t, "David Pastrnak", players[0].(map[string]interface{})["name"])
}

func TestGetRosterUnknownTeamIs400(t *testing.T) {
	nhl, _ := newTestClients(t,
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("unknown team must be rejected before any fetch")
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	router := newTeamRouter(nhl)

	w := doRequest(router, "GET", "/teams/whalers/roster")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
