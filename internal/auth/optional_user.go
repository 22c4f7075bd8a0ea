package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// DemoUserID is the identity used in dev mode when no X-User-Id header is sent.
const DemoUserID = "demo-user"

// OptionalUser sets a firebase uid in context without enforcing auth.
// - If X-User-Id is missing, it falls back to "demo-user".
// - Use this ONLY for development/testing (AUTH_MODE=dev).
func OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			uid = DemoUserID
		}

		SetUser(c, Identity{UID: uid, Email: strings.TrimSpace(c.GetHeader("X-User-Email"))})
		c.Next()
	}
}
