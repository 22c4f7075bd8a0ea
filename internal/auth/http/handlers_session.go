package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/it-inventory/internal/auth"
)

type sessionResp struct {
	OK       bool          `json:"ok"`
	Session  auth.Session  `json:"session"`
	Decision auth.Decision `json:"decision"`
	LoginURL string        `json:"login_url,omitempty"`
}

// GetSession reports the caller's identity and what the client should do with it.
// By the time a request reaches the server the identity is resolved, so Loading is always false.
func (h *Handler) GetSession(c *gin.Context) {
	s := auth.Session{User: auth.CurrentUser(c)}
	d := auth.Decide(s)

	resp := sessionResp{OK: true, Session: s, Decision: d}
	if d == auth.DecisionRedirect {
		resp.LoginURL = h.loginURL
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut revokes the user's refresh tokens and forgets the cached ID token.
func (h *Handler) SignOut(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated", "login_url": h.loginURL})
		return
	}
	ctx := c.Request.Context()

	if h.revoker != nil {
		if err := h.revoker.RevokeRefreshTokens(ctx, uid); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "failed to revoke session"})
			return
		}
	}

	if h.cache != nil {
		if token := c.GetString(auth.CtxIDToken); token != "" {
			if err := h.cache.Delete(ctx, token); err != nil && h.log != nil {
				h.log.WithError(err).WithField("uid", uid).Warn("failed to evict cached token")
			}
		}
	}

	if h.onSignOut != nil {
		h.onSignOut(ctx, uid)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "login_url": h.loginURL})
}
