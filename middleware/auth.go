package middleware

import (
	"net/http"

	"cardoctor-backend/auth"

	"github.com/gin-gonic/gin"
)

// UserKey is the context key the verified identity claim is stored under.
const UserKey = "user"

// VerifyToken gates protected routes. It reads the session token from the
// "token" cookie, verifies it, and attaches the decoded claims to the
// request context. Requests without a cookie or with a bad token are
// rejected with 401 before the handler runs.
func VerifyToken(codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"auth":    false,
				"message": "Not authorized",
			})
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		c.Set(UserKey, claims)
		c.Next()
	}
}

// UserClaims pulls the claims attached by VerifyToken out of the context.
func UserClaims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
