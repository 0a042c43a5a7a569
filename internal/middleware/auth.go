package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/token"
)

const principalKey = "principal"

// AuthMiddleware creates a Gin middleware that authenticates requests
// with a bearer token. Missing header, malformed token, bad signature
// and expired token all produce the same 401 response; the actual
// cause goes to the log only, never to the client.
func AuthMiddleware(codec *token.Codec, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthenticated(c)
			return
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			logger.Debug("Token verification failed", zap.Error(err))
			unauthenticated(c)
			return
		}

		c.Set(principalKey, models.Principal{
			Subject: claims.Subject,
			Roles:   claims.Roles,
		})

		c.Next()
	}
}

// RequireRoles creates a middleware that admits only principals
// holding every listed role. It must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			unauthenticated(c)
			return
		}

		if !hasAllRoles(principal, roles) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal set by
// AuthMiddleware for the current request.
func PrincipalFromContext(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := v.(models.Principal)
	return principal, ok
}

func hasAllRoles(principal models.Principal, required []string) bool {
	for _, role := range required {
		if !principal.HasRole(role) {
			return false
		}
	}
	return true
}

func unauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
	c.Abort()
}
