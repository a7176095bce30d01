package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/cursorcraft/cursorcraft-backend/config"
)

var ErrFirebaseNotConfigured = errors.New("firebase: FIREBASE_CREDENTIALS_PATH is not set")

// appConfig returns the Firebase app settings and client options for cfg.
// A blank project id lets the SDK read it from the credentials file.
func appConfig(cfg *config.FirebaseConfig) (*firebase.Config, []option.ClientOption, error) {
	if cfg == nil || !cfg.Enabled() {
		return nil, nil, ErrFirebaseNotConfigured
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	return fbCfg, []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}, nil
}

// NewAuthClient builds the Firebase Auth client used to verify ID tokens.
// The returned client satisfies middleware.TokenVerifier.
func NewAuthClient(ctx context.Context, cfg *config.FirebaseConfig) (*auth.Client, error) {
	fbCfg, opts, err := appConfig(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return client, nil
}
