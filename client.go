// Package tmdb is a client SDK for The Movie Database HTTP API.
//
// The SDK layers a typed TMDb client over the reusable base in core:
// URL construction with template expansion, ordered query parameters and
// pluggable authentication. Credentials travel as the api_key query
// parameter by default; header-based services plug in a different
// core.Authenticator.
package tmdb

import (
	"context"
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/filmgraph/tmdb/core"
	"github.com/filmgraph/tmdb/internal/api"
	"github.com/filmgraph/tmdb/internal/fetchqueue"
)

const (
	// ServiceRoot is the fixed URL prefix for the TMDb v3 API.
	ServiceRoot = "https://api.themoviedb.org/3/"

	// AuthParam is the query parameter TMDb expects the token under.
	AuthParam = "api_key"

	// TokenEnvVar names the environment variable FromEnv reads the token from.
	TokenEnvVar = "TMDB_API_TOKEN"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	service core.Service
	http    *http.Client
	auth    core.Authenticator
	retry   core.RetryPolicy
	exec    executor
	pick    func(n int) int // random source for GetRandomPopularPerson

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client authenticating with apiToken.
// Additional options can be provided via functional arguments.
func New(apiToken string, opts ...Option) *Client {
	if apiToken == "" {
		panic("apiToken cannot be empty")
	}

	c := &Client{
		service: core.Service{Name: "tmdb", Root: ServiceRoot, Required: []string{"api_token"}},
		http:    &http.Client{Timeout: 30 * time.Second},
		auth:    core.QueryTokenAuth{Param: AuthParam, Token: apiToken},
		retry:   core.DefaultRetryPolicy(),
		pick:    rand.Intn,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	c.wrapTransport()

	return c
}

// FromEnv constructs a Client with the token from TMDB_API_TOKEN.
// An unset variable is a configuration error, surfaced immediately.
func FromEnv(opts ...Option) (*Client, error) {
	token, err := core.TokenFromEnv(TokenEnvVar)
	if err != nil {
		return nil, err
	}
	return New(token, opts...), nil
}

// wrapTransport layers the credential and request-id transports over
// whatever the options installed, so every request carries them.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{
		base: &requestIDTransport{base: base},
		auth: c.auth,
	}
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// URL builds a fully authenticated URL for an arbitrary endpoint template.
// Most callers use the typed operations below; URL is the escape hatch for
// endpoints the SDK has no wrapper for yet.
func (c *Client) URL(endpoint string, params map[string]string, urlParams core.Params) (string, error) {
	return c.service.URLBuilder(endpoint, params, c.auth.ApplyParams(urlParams.Clone()))
}

// caller bundles the per-request dependencies for internal/api.
func (c *Client) caller() api.Caller {
	return api.Caller{HTTP: c.http, Service: c.service, Auth: c.auth, Retry: c.retry}
}

// hydrationCaller disables request-level retries; hydration jobs are retried
// by the fetch executor instead, so two layers never compound.
func (c *Client) hydrationCaller() api.Caller {
	cl := c.caller()
	cl.Retry = core.NoRetry()
	return cl
}

// --------------------------------------------------------------------
// Movie operations - delegated to internal/api
// --------------------------------------------------------------------

// GetMovie retrieves a movie with its credits.
func (c *Client) GetMovie(ctx context.Context, movieID int) (*Movie, error) {
	return api.GetMovie(ctx, c.caller(), movieID)
}

// FindMovie searches movies by title.
func (c *Client) FindMovie(ctx context.Context, query string) ([]Movie, error) {
	return api.FindMovie(ctx, c.caller(), query)
}

// --------------------------------------------------------------------
// Person operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPerson retrieves a person with their movie credits.
func (c *Client) GetPerson(ctx context.Context, personID int) (*Person, error) {
	return api.GetPerson(ctx, c.caller(), personID)
}

// FindPerson searches people by name.
func (c *Client) FindPerson(ctx context.Context, query string) ([]Person, error) {
	return api.FindPerson(ctx, c.caller(), query)
}

// GetRandomPopularPerson returns a uniformly random person among the first
// limit entries of TMDb's popular listing, with their full record.
func (c *Client) GetRandomPopularPerson(ctx context.Context, limit int) (*Person, error) {
	return api.RandomPopularPerson(ctx, c.caller(), limit, c.pick)
}

// newDefaultExecutor constructs the fetch executor from env-tunable config.
func newDefaultExecutor() *fetchqueue.Executor {
	cfg, err := fetchqueue.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("invalid fetchqueue env config, using defaults")
		cfg = fetchqueue.Config{}
	}
	if cfg.ErrorHandler == nil {
		// Failure counting happens in the hydrate loops, where the job key
		// (and so the shard label) is known; here we only log.
		cfg.ErrorHandler = func(err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg("hydration fetch failed")
		}
	}
	return fetchqueue.New(cfg)
}
