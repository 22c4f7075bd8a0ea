package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxEmail       = "email"
	CtxIDToken     = "firebase_id_token"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context
// This is set by the auth middleware (or OptionalUser in dev mode)
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

// CurrentUser returns the identity attached to the request, or nil when anonymous.
func CurrentUser(c *gin.Context) *Identity {
	uid := UserFirebaseUID(c)
	if uid == "" {
		return nil
	}
	return &Identity{UID: uid, Email: c.GetString(CtxEmail)}
}

// SetUser attaches a verified identity to the request.
func SetUser(c *gin.Context, id Identity) {
	c.Set(CtxFirebaseUID, id.UID)
	if id.Email != "" {
		c.Set(CtxEmail, id.Email)
	}
}
