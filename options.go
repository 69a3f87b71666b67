package tmdb

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/filmgraph/tmdb/core"
)

// Option mutates the Client during New().
//
// Options are applied before the credential transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath the
// auth wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}

// WithServiceRoot points the client at a different API root, e.g. a caching
// proxy exposing the TMDb surface. The root must end with a slash so
// endpoint paths append cleanly.
func WithServiceRoot(root string) Option {
	return func(c *Client) error {
		if root == "" || !strings.HasSuffix(root, "/") {
			return fmt.Errorf("service root must be non-empty and end with '/'")
		}
		c.service.Root = root
		return nil
	}
}

// WithAuthenticator replaces the default query-token authenticator, for
// services that authenticate with headers instead.
func WithAuthenticator(a core.Authenticator) Option {
	return func(c *Client) error {
		if a == nil {
			return fmt.Errorf("nil authenticator")
		}
		c.auth = a
		return nil
	}
}

// WithRetryPolicy overrides the request retry budget.
func WithRetryPolicy(rp core.RetryPolicy) Option {
	return func(c *Client) error {
		if rp.MaxAttempts <= 0 {
			return fmt.Errorf("retry policy needs at least one attempt")
		}
		c.retry = rp
		return nil
	}
}

// WithoutExecutor disables the background fetch executor. Overlap hydration
// then runs serially on the calling goroutine, which suits short-lived CLIs.
func WithoutExecutor() Option {
	return func(c *Client) error {
		c.exec = inlineExecutor{}
		return nil
	}
}
