package http

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/it-inventory/internal/auth"
)

// Handler bundles the dependencies for the session endpoints.
type Handler struct {
	revoker   auth.Revoker
	cache     auth.TokenCache
	loginURL  string
	log       *logrus.Logger
	onSignOut func(ctx context.Context, uid string)
}

// New builds the session handler. revoker and cache may be nil (dev mode).
// onSignOut runs after a successful sign-out, e.g. to drop the user's in-memory store.
func New(revoker auth.Revoker, cache auth.TokenCache, loginURL string, log *logrus.Logger, onSignOut func(ctx context.Context, uid string)) *Handler {
	return &Handler{
		revoker:   revoker,
		cache:     cache,
		loginURL:  loginURL,
		log:       log,
		onSignOut: onSignOut,
	}
}
