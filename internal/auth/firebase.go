package auth

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/GoSim-25-26J-441/it-inventory/config"
)

// InitializeFirebase initializes the Firebase Admin SDK and returns an Auth client
func InitializeFirebase(ctx context.Context, cfg *config.AuthConfig) (*fbauth.Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return authClient, nil
}

// TokenVerifier checks an ID token and returns who it belongs to and when it expires.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (Identity, time.Time, error)
}

// Revoker ends every session of a user at the identity provider.
type Revoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// FirebaseVerifier adapts the Admin SDK client. Revoked tokens are rejected so
// sign-out takes effect before the token's natural expiry.
type FirebaseVerifier struct {
	Client *fbauth.Client
}

func (v FirebaseVerifier) Verify(ctx context.Context, idToken string) (Identity, time.Time, error) {
	tok, err := v.Client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return Identity{}, time.Time{}, err
	}
	id := Identity{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		id.Email = email
	}
	return id, time.Unix(tok.Expires, 0), nil
}
