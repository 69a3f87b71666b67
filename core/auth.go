package core

import (
	"fmt"
	"net/http"
	"os"
)

// Authenticator attaches service credentials to outgoing requests. It is an
// explicit capability held by the client rather than construction-order
// magic: a service picks one authenticator when it is built. Implementations
// are stateless after construction and safe for concurrent use.
type Authenticator interface {
	// ApplyParams injects credential query parameters and returns the
	// (possibly reallocated) parameter list. Header-based authenticators
	// return the input unchanged.
	ApplyParams(p Params) Params

	// ApplyHeaders injects credential headers. Parameter-based
	// authenticators leave the header set alone.
	ApplyHeaders(h http.Header)
}

// BearerTokenAuth authenticates with an Authorization: Bearer header.
type BearerTokenAuth struct {
	Token string
}

// ApplyParams returns p unchanged; the credential travels in a header.
func (a BearerTokenAuth) ApplyParams(p Params) Params { return p }

// ApplyHeaders sets the Authorization header.
func (a BearerTokenAuth) ApplyHeaders(h http.Header) {
	h.Set("Authorization", "Bearer "+a.Token)
}

// QueryTokenAuth authenticates by sending the token as a query parameter,
// for services that do not use header-based authentication.
//
// When the caller supplied no parameters the auth key becomes the first
// (and only) one, keeping query-string order deterministic. If the key is
// already present its value is overwritten in place; otherwise it is
// appended.
type QueryTokenAuth struct {
	Param string
	Token string
}

// ApplyParams injects the token under the configured parameter name.
func (a QueryTokenAuth) ApplyParams(p Params) Params {
	return p.Set(a.Param, a.Token)
}

// ApplyHeaders is a no-op; the credential travels in the query string.
func (a QueryTokenAuth) ApplyHeaders(http.Header) {}

// TokenFromEnv reads an API token from the named environment variable.
// An unset or empty variable is a configuration error surfaced immediately,
// never retried.
func TokenFromEnv(envVar string) (string, error) {
	token := os.Getenv(envVar)
	if token == "" {
		return "", fmt.Errorf("missing environment variable: %q", envVar)
	}
	return token, nil
}
