package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/auth"
)

// TokenHeader is the request header carrying the identity token.
const TokenHeader = "x-auth-token"

const userIDKey = "user_id"

// Auth is the only place identity is established. It extracts the token
// from the request header, verifies it, and injects the resolved user id
// into the gin context. Downstream handlers read it via UserID and must
// never re-derive identity from client-supplied fields.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := raw.(int)
	return id, ok
}
