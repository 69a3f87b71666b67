// Package api implements the HTTP operations of the TMDb endpoints.
// Each operation is a free function over a Caller so the transport,
// authenticator and retry budget stay injectable for tests.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/filmgraph/tmdb/core"
	clienterrors "github.com/filmgraph/tmdb/internal/errors"
	"github.com/filmgraph/tmdb/internal/types"
)

// Caller bundles what every endpoint call needs. HTTP is an interface so
// tests can inject a fake without standing up a server.
type Caller struct {
	HTTP    types.HTTPClient
	Service core.Service
	Auth    core.Authenticator
	Retry   core.RetryPolicy
}

// buildURL expands the endpoint against the service root with the
// authenticator's query credential injected. The caller's parameter list is
// cloned first so repeated calls never alias.
func (c Caller) buildURL(endpoint string, params map[string]string, urlParams core.Params) (string, error) {
	return c.Service.URLBuilder(endpoint, params, c.Auth.ApplyParams(urlParams.Clone()))
}

// getJSON executes a GET and decodes the 200 response into out.
//
// Failure handling follows the classification in internal/errors: 429 waits
// the server-requested Retry-After before the next attempt, other
// recoverable failures (5xx, network) follow the exponential backoff
// schedule, and irrecoverable failures return immediately. 404 maps to
// types.ErrNotFound.
func getJSON(ctx context.Context, c Caller, operation, url string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.Retry.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = c.Retry.MaxInterval
	exp.Reset()

	maxAttempts := c.Retry.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	attempts := 0
	for {
		err := doOnce(ctx, c, operation, url, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, types.ErrNotFound) || clienterrors.IsIrrecoverable(err) {
			return err
		}
		attempts++
		if attempts >= maxAttempts {
			return err
		}

		wait := exp.NextBackOff()
		var ce *clienterrors.ClassifiedError
		if errors.As(err, &ce) && ce.RetryAfter > 0 {
			rateLimitedTotal.WithLabelValues(operation).Inc()
			wait = ce.RetryAfter
		}
		log.Warn().Err(err).Str("operation", operation).Dur("wait", wait).Msg("retrying request")

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// doOnce performs a single attempt.
func doOnce(ctx context.Context, c Caller, operation, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	for key, values := range c.Service.Headers() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	c.Auth.ApplyHeaders(httpReq.Header)

	start := time.Now()
	resp, err := c.HTTP.Do(httpReq)
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(operation, "error").Inc()
		return clienterrors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			// A malformed body will not improve on retry.
			return &clienterrors.ClassifiedError{
				Category:   clienterrors.Irrecoverable,
				StatusCode: resp.StatusCode,
				Underlying: fmt.Errorf("%s: decode response: %w", operation, err),
			}
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", operation, types.ErrNotFound)

	case resp.StatusCode == http.StatusTooManyRequests:
		header := resp.Header.Get("Retry-After")
		if header == "" {
			return clienterrors.NewHTTPError(resp.StatusCode, "", operation)
		}
		wait, err := core.RetryAfter(header)
		if err != nil {
			// Neither integer nor HTTP date: the parse failure is the
			// error, surfaced immediately rather than retried blind.
			return &clienterrors.ClassifiedError{
				Category:   clienterrors.Irrecoverable,
				StatusCode: resp.StatusCode,
				Underlying: fmt.Errorf("%s: parse Retry-After: %w", operation, err),
			}
		}
		return clienterrors.NewRateLimitError(operation, wait)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return clienterrors.NewHTTPError(resp.StatusCode, string(body), operation)
	}
}
