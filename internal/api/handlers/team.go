package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/shape"
	"github.com/jstittsworth/puckdata/internal/teams"
	"github.com/jstittsworth/puckdata/internal/upstream"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// TeamHandler serves the team table, the name resolver, and rosters.
type TeamHandler struct {
	nhl    *upstream.NHLClient
	logger *logrus.Logger
}

func NewTeamHandler(nhl *upstream.NHLClient, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{nhl: nhl, logger: logger}
}

// ListTeams returns the static team table.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	utils.SendSuccess(c, gin.H{"teams": teams.All()})
}

type resolveQuery struct {
	Name string `form:"name" binding:"required"`
}

// ResolveTeam maps free-text input to a canonical abbreviation.
// Unknown names are rejected; no fetch is attempted on a guess.
func (h *TeamHandler) ResolveTeam(c *gin.Context) {
	var query resolveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, "Missing team name", err.Error())
		return
	}

	abbrev, err := teams.Resolve(query.Name)
	if err != nil {
		utils.SendNotFound(c, "Unknown team: "+query.Name)
		return
	}
	team, _ := teams.Lookup(abbrev)
	utils.SendSuccess(c, gin.H{"abbrev": abbrev, "team": team})
}

// GetRoster resolves the team path segment and returns its current
// roster.
func (h *TeamHandler) GetRoster(c *gin.Context) {
	abbrev, err := teams.Resolve(c.Param("team"))
	if err != nil {
		if errors.Is(err, teams.ErrUnknownTeam) {
			utils.SendValidationError(c, "Unknown team", c.Param("team"))
			return
		}
		utils.SendInternalError(c, "Failed to resolve team")
		return
	}

	resp, err := h.nhl.Roster(c.Request.Context(), abbrev)
	if err != nil {
		sendFetchError(c, h.logger, "roster", err)
		return
	}

	utils.SendSuccess(c, shape.Roster(abbrev, resp))
}
