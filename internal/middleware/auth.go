package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/models"
	"github.com/roar-media/core/internal/pkg/jwt"
	"github.com/roar-media/core/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// Auth returns a middleware that enforces JWT authentication.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth sets the user identity if a valid token is present, but does
// not block the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := jwt.Parse(extractToken(c)); err == nil && claims.UserID != "" {
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)
		}
		c.Next()
	}
}

// RequireRole returns a middleware that rejects authenticated users whose
// role is not in the allowed set. Run it after Auth.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		response.Forbidden(c)
	}
}

// RequireComposer gates the editor-studio endpoints.
func RequireComposer() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleEditor, models.RolePodcast)
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated user's role from context.
func CurrentRole(c *gin.Context) models.Role {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return models.Role(role)
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		auth = c.Query("token")
	}
	return normalizeToken(auth)
}

// normalizeToken trims spaces and strips an optional Bearer prefix.
func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
