package controllers

import (
	"net/http"
	"strings"

	"dbvaultapi/models"
	"dbvaultapi/pkg/logger"
	"dbvaultapi/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware guards routes behind Bearer-token authentication. A missing
// or invalid token, or a token whose user no longer exists, always yields the
// same generic 401 with a Bearer challenge header.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			abortUnauthorized(c)
			return
		}

		user, err := authSrv.ResolveCurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warnf("Authentication failed: %v", err)
			abortUnauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": utils.InvalidCredentials})
}

// currentUser returns the authenticated user stored by AuthMiddleware.
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
