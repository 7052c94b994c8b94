package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/upstream"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// sendFetchError translates an upstream failure into the response
// envelope, preserving the numeric status when the upstream answered.
func sendFetchError(c *gin.Context, logger *logrus.Logger, what string, err error) {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		utils.SendUpstreamError(c, fmt.Sprintf("Failed to fetch %s", what),
			fmt.Sprintf("upstream status %d", statusErr.Status))
		return
	}
	logger.Errorf("Failed to fetch %s: %v", what, err)
	utils.SendUpstreamError(c, fmt.Sprintf("Failed to fetch %s", what), err.Error())
}
