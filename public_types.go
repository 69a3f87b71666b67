package tmdb

import (
	"github.com/filmgraph/tmdb/core"
	"github.com/filmgraph/tmdb/internal/types"
)

// Public type aliases so SDK consumers can import only the tmdb package.
type (
	// Domain entities
	Movie  = types.Movie
	Person = types.Person

	// Base-layer types, re-exported for option values and URL building
	Param         = core.Param
	Params        = core.Params
	Authenticator = core.Authenticator
	RetryPolicy   = core.RetryPolicy
)
