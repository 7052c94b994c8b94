package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/shape"
	"github.com/jstittsworth/puckdata/internal/upstream"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// PlayerHandler serves individual player profiles.
type PlayerHandler struct {
	nhl    *upstream.NHLClient
	logger *logrus.Logger
}

func NewPlayerHandler(nhl *upstream.NHLClient, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{nhl: nhl, logger: logger}
}

// GetPlayer returns the shaped profile for one player ID.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || playerID <= 0 {
		utils.SendValidationError(c, "Invalid player ID", c.Param("id"))
		return
	}

	landing, err := h.nhl.Player(c.Request.Context(), playerID)
	if err != nil {
		sendFetchError(c, h.logger, "player", err)
		return
	}

	utils.SendSuccess(c, shape.Player(landing))
}
