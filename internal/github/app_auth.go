package github

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

// tokenRotationMargin is how long before expiry a cached installation
// token is replaced.
const tokenRotationMargin = 5 * time.Minute

// Credentials supplies short lived GitHub credentials.
type Credentials interface {
	Acquire(ctx context.Context) (*models.AuthContext, error)
}

// StaticToken is a personal access token. It never expires.
type StaticToken string

func (t StaticToken) Acquire(_ context.Context) (*models.AuthContext, error) {
	if t == "" {
		return nil, errors.New("github: empty token")
	}
	return &models.AuthContext{Token: string(t)}, nil
}

// AppAuthenticator exchanges GitHub App JWTs for installation tokens and
// caches the token until shortly before it expires. It is safe for
// concurrent use.
type AppAuthenticator struct {
	appID          int64
	installationID int64
	privateKey     *rsa.PrivateKey
	opts           *options
	now            func() time.Time

	mu      sync.Mutex
	current *models.AuthContext
}

func NewAppAuthenticator(appID, installationID int64, privateKeyPEM []byte, opts ...Option) (*AppAuthenticator, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("github: parsing app private key: %w", err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &AppAuthenticator{
		appID:          appID,
		installationID: installationID,
		privateKey:     key,
		opts:           o,
		now:            time.Now,
	}, nil
}

func (a *AppAuthenticator) Acquire(ctx context.Context) (*models.AuthContext, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil && !a.current.Expired(a.now(), tokenRotationMargin) {
		auth := *a.current
		return &auth, nil
	}

	auth, err := a.exchange(ctx)
	if err != nil {
		return nil, err
	}
	a.current = auth

	fresh := *auth
	return &fresh, nil
}

func (a *AppAuthenticator) exchange(ctx context.Context) (*models.AuthContext, error) {
	signed, err := a.appJWT()
	if err != nil {
		return nil, fmt.Errorf("github: signing app JWT: %w", err)
	}

	ghClient := gh.NewClient(a.opts.httpClient).WithAuthToken(signed)
	if a.opts.baseURL != "" {
		baseURL, err := parseBaseURL(a.opts.baseURL)
		if err != nil {
			return nil, err
		}
		ghClient.BaseURL = baseURL
	}

	token, _, err := ghClient.Apps.CreateInstallationToken(ctx, a.installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("github: creating installation token: %w", err)
	}
	if token.GetToken() == "" {
		return nil, errors.New("github: token exchange returned empty token")
	}

	return &models.AuthContext{
		Token:          token.GetToken(),
		ExpiresAt:      token.GetExpiresAt().Time,
		InstallationID: a.installationID,
	}, nil
}

// appJWT signs the RS256 token GitHub expects from an App. Issued-at is
// backdated a minute for clock skew; GitHub caps the lifetime at ten minutes.
func (a *AppAuthenticator) appJWT() (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(a.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-60 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(a.privateKey)
}
