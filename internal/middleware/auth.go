package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CondoClubServices/area-scheduler/internal/identity"
)

const (
	ContextActor = "actor"
	ContextUser  = "authUser"
)

// AuthMiddleware resolve o bearer token em um Actor e o injeta no
// contexto da request. Token ausente, malformado, expirado ou com
// sujeito inexistente respondem todos o mesmo 401.
func AuthMiddleware(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		user, actor, err := resolver.ResolveToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}

		c.Set(ContextActor, actor)
		c.Set(ContextUser, user)

		c.Next()
	}
}

// RequirePermission exige um rótulo plano de permissão (sem hierarquia).
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.MustGet(ContextActor).(identity.Actor)
		if !actor.HasPermission(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission_denied"})
			return
		}
		c.Next()
	}
}
