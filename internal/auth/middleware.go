package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the token for browser clients
const SessionCookie = "session"

var errInvalidHeader = errors.New("invalid authorization header format, expected: Bearer <token>")

// OptionalAuth resolves the identity when a valid token is present and
// lets anonymous requests through.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromRequest(c); err == nil && claims != nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// AuthMiddleware validates JWT tokens and protects routes
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromRequest(c)
		if err != nil {
			utils.Debug("Token validation failed", map[string]any{"error": err.Error(), "path": c.Request.URL.Path})
			unauthorized(c, "Invalid or expired session")
			return
		}
		if claims == nil {
			unauthorized(c, "You must be logged in")
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// CurrentIdentity returns the identity resolved for this request
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	return IdentityFromContext(c.Request.Context())
}

// claimsFromRequest returns nil claims and nil error when no token was sent
func claimsFromRequest(c *gin.Context) (*Claims, error) {
	tokenString := ""
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, errInvalidHeader
		}
		tokenString = parts[1]
	} else if cookie, err := c.Cookie(SessionCookie); err == nil {
		tokenString = cookie
	}

	if tokenString == "" {
		return nil, nil
	}
	return ValidateToken(tokenString)
}

func setIdentity(c *gin.Context, claims *Claims) {
	SetIdentity(c, models.Identity{UserID: claims.UserID, Username: claims.Username})
}

// SetIdentity attaches identity to the request context
func SetIdentity(c *gin.Context, identity models.Identity) {
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
}

func unauthorized(c *gin.Context, text string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":  false,
		"message":  gin.H{"level": "warning", "text": text},
		"redirect": "/login",
	})
}
