package middleware

import (
	"net/http"

	"vendorgrid/internal/service"
	"vendorgrid/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey guards integration endpoints with the X-API-Key header.
// Key validation is delegated to the integration service, which currently
// accepts any non-blank key.
func RequireAPIKey(integrationService service.IntegrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "API key required"))
			return
		}

		validation := integrationService.ValidateAPIKey(key)
		if !validation.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, validation.Message))
			return
		}

		c.Next()
	}
}
