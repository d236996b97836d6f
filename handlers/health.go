package handlers

import (
	"net/http"

	"katwate/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check. It answers 503 once any
// dependency stopped responding.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": http.StatusText(code), "checks": status})
}
