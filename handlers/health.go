package handlers

import (
	"net/http"

	"skyline/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the liveness of Mongo and Redis.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
