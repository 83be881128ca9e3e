package controllers

import (
	"net/http"

	"dbvaultapi/utils"

	"github.com/gin-gonic/gin"
)

// Ping responds to health checks
// @Summary Health check
// @Description Returns pong when the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse "pong"
// @Router /ping [get]
func ping(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "pong"})
}

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/ping", ping)
}
