package tmdb

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// authTransport decorates every outgoing request with the configured
// authenticator's headers. Query-parameter credentials are injected at URL
// construction time instead, so this is a no-op for QueryTokenAuth.
type authTransport struct {
	base http.RoundTripper
	auth interface{ ApplyHeaders(http.Header) }
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	t.auth.ApplyHeaders(cloned.Header)
	return t.base.RoundTrip(cloned)
}

// requestIDTransport stamps each request with a fresh X-Request-Id so
// client and server logs can be correlated.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-Id") == "" {
		cloned := req.Clone(req.Context())
		cloned.Header.Set("X-Request-Id", uuid.NewString())
		req = cloned
	}
	return t.base.RoundTrip(req)
}

// debugTransport dumps each request/response pair for troubleshooting API
// communication problems. Enable with TMDB_DEBUG=true or DEBUG=true; dumps
// include full bodies and the credential, so keep it out of production logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// TMDB_DEBUG targets this client; DEBUG follows broader application
// debugging conventions. Both must be exactly "true".
func debugLoggingRequested() bool {
	return os.Getenv("TMDB_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
