package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/elitecards/admin-console/internal/session"
)

// RequireSession guards console routes behind the stored platform
// credential. The token's expiry claim is checked locally before any
// round trip; the signature belongs to the platform and is verified
// there, so only the unverified claims are parsed here. An expired or
// missing session clears the store and returns 401.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := store.Token(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session store unavailable"})
			c.Abort()
			return
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			c.Abort()
			return
		}

		if tokenExpired(token) {
			_ = store.Clear(c.Request.Context())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			c.Abort()
			return
		}

		role, err := store.Role(c.Request.Context())
		if err == nil && role != "" {
			c.Set("user_role", role)
		}
		c.Next()
	}
}

// tokenExpired parses the JWT claims without verifying the signature and
// reports whether the exp claim has passed. Tokens that are not JWTs or
// carry no expiry are passed through; the platform remains the authority.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
