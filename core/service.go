// Package core provides the base layer shared by API wrapper services:
// URL construction with template expansion, ordered query parameters,
// Retry-After parsing, and pluggable authentication.
package core

import (
	"fmt"
	"net/http"
	"strings"
)

// Service describes one concrete API wrapper service. The root URL is fixed
// per service and never mutated after construction.
type Service struct {
	// Name is a free-form label for the service.
	Name string

	// Root is the scheme+host(+base path) prefix for every endpoint.
	Root string

	// Required lists configuration keys a concrete service needs beyond
	// the defaults.
	Required []string
}

// Headers returns the header set for service requests. The base service
// sends none; authenticated services contribute theirs via an Authenticator.
func (s Service) Headers() http.Header {
	return http.Header{}
}

// CheckConfig verifies that every required configuration key is present.
func (s Service) CheckConfig(config map[string]string) error {
	var missing []string
	for _, key := range s.Required {
		if _, ok := config[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("service %q missing required config keys: %s", s.Name, strings.Join(missing, ", "))
	}
	return nil
}

// URLBuilder builds the URL for endpoint against the service root.
// See BuildURL for the composition rules.
func (s Service) URLBuilder(endpoint string, params map[string]string, urlParams Params) (string, error) {
	return BuildURL(s.Root, endpoint, params, urlParams)
}

// BuildURL composes root, endpoint and an optional query string, then
// expands {name} placeholders in the whole result from params. It is a pure
// function: no I/O, no side effects. A placeholder with no entry in params
// is an error.
func BuildURL(root, endpoint string, params map[string]string, urlParams Params) (string, error) {
	raw := root + endpoint
	if len(urlParams) > 0 {
		raw += "?" + urlParams.Encode()
	}
	return expandTemplate(raw, params)
}

// expandTemplate substitutes {name} placeholders from params.
func expandTemplate(s string, params map[string]string) (string, error) {
	if !strings.ContainsRune(s, '{') {
		return s, nil
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		end := strings.IndexByte(s[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in %q", s)
		}
		name := s[open+1 : open+end]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("missing template parameter %q", name)
		}
		b.WriteString(s[:open])
		b.WriteString(value)
		s = s[open+end+1:]
	}
}
