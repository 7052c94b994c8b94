package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetHealth returns basic liveness status - always returns 200 if the server
// is running.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "puckdata",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
