package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "sessionID"
)

// sessionMiddleware gives every visitor a session id cookie. The id only keys
// in-memory page state; nothing about the visitor is recorded.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !validSessionID(id) {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// shortID is a log-friendly prefix of a session id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
