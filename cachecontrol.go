// Package cachecontrol parses HTTP Cache-Control header values into a
// typed directive set usable by caching logic.
//
// see https://www.rfc-editor.org/rfc/rfc7234#section-5.2
// see https://www.rfc-editor.org/rfc/rfc5861
package cachecontrol

import "time"

// Cachability is the mutually-exclusive top-level caching permission of a
// Cache-Control value. The zero value means no cachability directive was
// present.
type Cachability int

const (
	// CachabilityUnset means the header carried no cachability directive.
	CachabilityUnset Cachability = iota
	// Public allows any cache to store the response.
	Public
	// Private restricts storage to non-shared caches.
	Private
	// NoCache requires revalidation before a stored response is used.
	NoCache
	// OnlyIfCached asks for a stored response only, with no forwarding.
	OnlyIfCached
)

func (c Cachability) String() string {
	switch c {
	case Public:
		return "public"
	case Private:
		return "private"
	case NoCache:
		return "no-cache"
	case OnlyIfCached:
		return "only-if-cached"
	}
	return ""
}

// CacheControl is the directive set of a single Cache-Control header value.
// The zero value is a header with no recognized directives: nil durations,
// CachabilityUnset and false flags. A nil duration pointer means the
// directive was absent; a set duration is always non-negative.
type CacheControl struct {
	Cachability Cachability

	MaxAge   *time.Duration
	SMaxAge  *time.Duration
	MaxStale *time.Duration
	MinFresh *time.Duration

	MustRevalidate  bool
	ProxyRevalidate bool
	Immutable       bool
	NoStore         bool
	NoTransform     bool

	// see https://www.rfc-editor.org/rfc/rfc5861
	StaleWhileRevalidate *time.Duration
	StaleIfError         *time.Duration
}

// Cacheable reports whether a shared cache may store the response at all.
// It is false when no-store is set or cachability is no-cache or private.
// This is a projection of the parsed directives only; freshness and
// revalidation are up to the caller.
func (c *CacheControl) Cacheable() bool {
	if c.NoStore {
		return false
	}
	switch c.Cachability {
	case NoCache, Private:
		return false
	}
	return true
}

// MaxAgeDuration returns the max-age directive and whether it was present.
func (c *CacheControl) MaxAgeDuration() (time.Duration, bool) {
	if c.MaxAge == nil {
		return 0, false
	}
	return *c.MaxAge, true
}

// SMaxAgeDuration returns the s-maxage directive and whether it was present.
func (c *CacheControl) SMaxAgeDuration() (time.Duration, bool) {
	if c.SMaxAge == nil {
		return 0, false
	}
	return *c.SMaxAge, true
}
