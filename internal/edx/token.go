package edx

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenConfig holds the service credential used for catalog calls.
type TokenConfig struct {
	AccessTokenURL string
	ClientID       string
	ClientSecret   string
}

// NewTokenSource builds a client-credentials token source for the
// service-level access token. The token is fetched lazily on first use and
// cached until expiry; catalog calls share one source so a single token
// serves the whole process.
func NewTokenSource(ctx context.Context, cfg TokenConfig) oauth2.TokenSource {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.AccessTokenURL,
		// The catalog service authenticates with JWT-formatted tokens.
		EndpointParams: url.Values{"token_type": {"jwt"}},
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	return cc.TokenSource(ctx)
}
