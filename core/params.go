package core

import (
	"net/url"
	"strings"
)

// Param is a single query-string key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is preserved because
// some APIs are order-sensitive and deterministic output keeps tests stable;
// url.Values cannot be used here since Encode sorts its keys.
type Params []Param

// Set overwrites the value for key in place if present, otherwise appends
// the pair. On a nil receiver it allocates, so the new key ends up first.
func (p Params) Set(key, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for i := range p {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return "", false
}

// Clone returns a copy that can be mutated without aliasing the receiver.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// Encode renders the parameters as a form-encoded query string in insertion
// order.
func (p Params) Encode() string {
	var b strings.Builder
	for i := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[i].Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[i].Value))
	}
	return b.String()
}
