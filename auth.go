package tweetkit

import (
	"net/http"

	"github.com/tweetkit/tweetkit-go/pkg/errors"
)

// Authenticator attaches credentials to an outgoing request. The transport
// calls Sign exactly once per attempt; token caching and refresh, if any,
// belong to the implementation.
type Authenticator interface {
	Sign(req *http.Request) error
}

// AuthenticatorFunc adapts a plain function to the Authenticator interface.
type AuthenticatorFunc func(req *http.Request) error

// Sign implements Authenticator.
func (f AuthenticatorFunc) Sign(req *http.Request) error {
	return f(req)
}

// BearerTokenAuth signs requests with an OAuth2 app-only bearer token.
type BearerTokenAuth struct {
	Token string
}

// Sign implements Authenticator.
func (a *BearerTokenAuth) Sign(req *http.Request) error {
	if a.Token == "" {
		return &errors.ConfigError{Field: "Token", Message: "bearer token is empty"}
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	return nil
}
