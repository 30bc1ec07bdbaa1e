package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextProfileID = "profileID"
	ContextEmail     = "email"
	ContextRole      = "role"
)

// AuthMiddleware validates session tokens and gates routes by role
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
}

// JWTAuth validates the bearer token and stores the caller's identity
// on the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextProfileID, claims.ProfileID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, models.Role(claims.Role))
		c.Next()
	}
}

// RoleRequired restricts a route to the given roles. It must run after
// JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, "Authentication required")
			return
		}

		role, ok := callerRole.(models.Role)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient role for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
	}
}

// CallerProfileID returns the authenticated profile id from the context
func CallerProfileID(c *gin.Context) string {
	id, _ := c.Get(ContextProfileID)
	s, _ := id.(string)
	return s
}

// CallerRole returns the authenticated role from the context
func CallerRole(c *gin.Context) models.Role {
	v, _ := c.Get(ContextRole)
	role, _ := v.(models.Role)
	return role
}
