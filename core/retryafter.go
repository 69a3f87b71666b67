package core

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RetryAfter parses a Retry-After header value. Per RFC 2616 §14.37 the
// value is either an integer number of seconds or an HTTP date; this handles
// both. Date values yield the offset from current UTC time truncated to
// whole seconds, which may be negative for dates in the past. A value that
// is neither form returns the date-parse error unchanged.
func RetryAfter(value string) (time.Duration, error) {
	if secs, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	date, err := http.ParseTime(value)
	if err != nil {
		return 0, err
	}
	return time.Until(date).Truncate(time.Second), nil
}
