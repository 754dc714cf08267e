package auth

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Error reports a failed token acquisition. Without a token no mutating
// call can be authenticated, so it is fatal at startup.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("acquire token: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Provider obtains a bearer token from the identity provider using the
// resource owner password grant. The token is fetched once and held for the
// process lifetime; it is not refreshed on expiry.
type Provider struct {
	conf     *oauth2.Config
	username string
	password string
}

// NewProvider configures the grant against tokenURL (the OIDC provider's
// token endpoint).
func NewProvider(tokenURL, clientID, clientSecret, username, password string) *Provider {
	return &Provider{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		},
		username: username,
		password: password,
	}
}

// AccessToken performs the grant and returns the opaque bearer string.
func (p *Provider) AccessToken(ctx context.Context) (string, error) {
	tok, err := p.conf.PasswordCredentialsToken(ctx, p.username, p.password)
	if err != nil {
		return "", &Error{Err: err}
	}
	log.WithField("expiry", tok.Expiry).Debug("token acquired")
	return tok.AccessToken, nil
}
