package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the shell's session id. The server mints one
	// when the header is absent and always echoes it back.
	SessionHeader = "X-Session-Id"

	// CtxSessionID is the gin context key handlers read.
	CtxSessionID = "session_id"
)

// Session resolves or mints the session id for the request.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(CtxSessionID, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionID reads the id injected by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(CtxSessionID)
}
