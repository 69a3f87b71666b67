package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/filmgraph/tmdb/core"
)

// newCaller builds a Caller against a test server with query-token auth and
// a fast retry schedule.
func newCaller(srv *httptest.Server) Caller {
	return Caller{
		HTTP:    srv.Client(),
		Service: core.Service{Name: "tmdb", Root: srv.URL + "/3/"},
		Auth:    core.QueryTokenAuth{Param: "api_key", Token: "token"},
		Retry:   core.RetryPolicy{MaxAttempts: 3, BaseBackoff: time.Millisecond, MaxInterval: 10 * time.Millisecond},
	}
}

// errRT is a RoundTripper that always fails at the network level.
type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("dial refused")
}
