package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session_id"
	SessionContextKey = "session_id"

	// A week, in seconds. Matches the Redis TTL on session carts.
	sessionCookieMaxAge = 7 * 24 * 3600
)

// SessionMiddleware guarantees every request carries a session id: it reads
// the session cookie or, when absent, issues a fresh UUID and sets it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}
