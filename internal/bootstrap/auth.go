package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/it-inventory/config"
	"github.com/GoSim-25-26J-441/it-inventory/internal/auth"
	authmw "github.com/GoSim-25-26J-441/it-inventory/internal/auth/middleware"
)

// AuthDeps is the session gate as seen by the router.
type AuthDeps struct {
	// Required rejects anonymous callers; Optional only attaches the user.
	Required gin.HandlerFunc
	Optional gin.HandlerFunc
	Revoker  auth.Revoker
	Cache    auth.TokenCache
	LoginURL string
}

// BuildAuth wires Firebase token verification, or the X-User-Id fallback in dev mode.
// The token cache lives in Redis when rdb is non-nil, in process otherwise.
func BuildAuth(ctx context.Context, cfg config.AuthConfig, rdb *redis.Client, log *logrus.Logger) (AuthDeps, error) {
	if cfg.Mode == config.AuthModeDev {
		log.Warn("AUTH_MODE=dev: requests are trusted via X-User-Id")
		return AuthDeps{
			Required: auth.OptionalUser(),
			Optional: auth.OptionalUser(),
			LoginURL: cfg.LoginURL,
		}, nil
	}

	client, err := auth.InitializeFirebase(ctx, &cfg)
	if err != nil {
		return AuthDeps{}, fmt.Errorf("firebase: %w", err)
	}

	var cache auth.TokenCache
	if rdb != nil {
		cache = auth.NewRedisTokenCache(rdb)
	} else {
		cache = auth.NewMemoryTokenCache(cfg.TokenCacheTTL)
	}

	opt := authmw.Options{
		Verifier: auth.FirebaseVerifier{Client: client},
		Cache:    cache,
		CacheTTL: cfg.TokenCacheTTL,
		LoginURL: cfg.LoginURL,
		Log:      log,
	}
	return AuthDeps{
		Required: authmw.FirebaseAuthMiddleware(opt),
		Optional: authmw.OptionalFirebaseAuth(opt),
		Revoker:  client,
		Cache:    cache,
		LoginURL: cfg.LoginURL,
	}, nil
}
