package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/it-inventory/internal/auth"
)

// Options configures the token-verifying middleware.
type Options struct {
	Verifier auth.TokenVerifier
	Cache    auth.TokenCache
	CacheTTL time.Duration
	LoginURL string
	Log      *logrus.Logger
	Now      func() time.Time
}

// FirebaseAuthMiddleware validates Firebase ID tokens and rejects anonymous callers
// with a pointer to the external login surface.
func FirebaseAuthMiddleware(opt Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, opt) {
			return
		}
		if auth.Decide(auth.Session{User: auth.CurrentUser(c)}) != auth.DecisionAllow {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token", "login_url": opt.LoginURL})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalFirebaseAuth attaches the user when a valid token is present but lets
// anonymous requests through (used by the session endpoint).
func OptionalFirebaseAuth(opt Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, opt) {
			return
		}
		c.Next()
	}
}

// authenticate resolves the bearer token. It returns false after aborting on an invalid token.
func authenticate(c *gin.Context, opt Options) bool {
	token := extractToken(c)
	if token == "" {
		return true
	}
	ctx := c.Request.Context()

	if opt.Cache != nil {
		id, ok, err := opt.Cache.Get(ctx, token)
		if err != nil && opt.Log != nil {
			opt.Log.WithError(err).Warn("token cache lookup failed")
		}
		if ok {
			auth.SetUser(c, id)
			c.Set(auth.CtxIDToken, token)
			return true
		}
	}

	id, expires, err := opt.Verifier.Verify(ctx, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token", "login_url": opt.LoginURL})
		c.Abort()
		return false
	}

	if opt.Cache != nil {
		now := time.Now
		if opt.Now != nil {
			now = opt.Now
		}
		if err := opt.Cache.Set(ctx, token, id, auth.CacheTTL(opt.CacheTTL, expires, now())); err != nil && opt.Log != nil {
			opt.Log.WithError(err).Warn("token cache store failed")
		}
	}

	auth.SetUser(c, id)
	c.Set(auth.CtxIDToken, token)
	return true
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
