package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service status and the supported endpoints.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Backend running",
		"endpoints": []string{"/chat", "/health"},
	})
}
