package tmdb

import (
	"errors"

	"github.com/filmgraph/tmdb/internal/types"
)

// ErrBackPressure is returned when the client's internal fetch queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// Re-export the shared SDK error so callers compare against a single symbol.
var ErrNotFound = types.ErrNotFound

// IsNotFound reports whether err means the requested resource does not exist.
func IsNotFound(err error) bool { return errors.Is(err, types.ErrNotFound) }
