package cachecontrol

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxDeltaSeconds is the largest delta-seconds value representable as a
// time.Duration. Larger values saturate instead of overflowing into a
// negative duration.
const maxDeltaSeconds = uint64(math.MaxInt64 / int64(time.Second))

// ErrInvalidHeader reports a header line that is not a single
// "Cache-Control: value" pair with the header name written exactly so.
var ErrInvalidHeader = errors.New("cachecontrol: invalid Cache-Control header line")

// DirectiveError reports a freshness directive whose value is missing or
// not a non-negative base-10 integer. The whole parse fails on it; no
// partial record is returned.
type DirectiveError struct {
	Directive string
	Value     string
	Missing   bool
}

func (e *DirectiveError) Error() string {
	if e.Missing {
		return fmt.Sprintf("cachecontrol: directive %q requires a value", e.Directive)
	}
	return fmt.Sprintf("cachecontrol: directive %q has invalid value %q", e.Directive, e.Value)
}

// ParseHeader parses a full header line, e.g. "Cache-Control: max-age=60".
// The line must contain exactly one colon and the name before it must be
// the literal "Cache-Control". An empty value after the colon is legal and
// yields the zero record.
func ParseHeader(raw string) (*CacheControl, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Cache-Control" {
		return nil, ErrInvalidHeader
	}
	return Parse(strings.TrimSpace(parts[1]))
}

// Parse parses a Cache-Control value, i.e. everything after the
// "Cache-Control:" prefix. Directives are processed left to right; a later
// cachability keyword overwrites an earlier one. Unknown directives are
// ignored. A freshness directive with a missing or malformed value fails
// the whole parse.
func Parse(value string) (*CacheControl, error) {
	cc := &CacheControl{}
	for _, token := range strings.Split(value, ",") {
		kv := strings.SplitN(token, "=", 2)
		key := strings.TrimSpace(kv[0])

		switch key {
		case "public":
			cc.Cachability = Public
		case "private":
			cc.Cachability = Private
		case "no-cache":
			cc.Cachability = NoCache
		case "only-if-cached":
			cc.Cachability = OnlyIfCached

		case "max-age":
			d, err := seconds(key, kv)
			if err != nil {
				return nil, err
			}
			cc.MaxAge = d
		case "s-maxage":
			d, err := seconds(key, kv)
			if err != nil {
				return nil, err
			}
			cc.SMaxAge = d
		case "max-stale":
			d, err := seconds(key, kv)
			if err != nil {
				return nil, err
			}
			cc.MaxStale = d
		case "min-fresh":
			d, err := seconds(key, kv)
			if err != nil {
				return nil, err
			}
			cc.MinFresh = d
		case "stale-while-revalidate":
			d, err := seconds(key, kv)
			if err != nil {
				return nil, err
			}
			cc.StaleWhileRevalidate = d
		case "stale-if-error":
			d, err := seconds(key, kv)
			if err != nil {
				return nil, err
			}
			cc.StaleIfError = d

		// flag directives carry no payload; an attached value is ignored
		case "must-revalidate":
			cc.MustRevalidate = true
		case "proxy-revalidate":
			cc.ProxyRevalidate = true
		case "immutable":
			cc.Immutable = true
		case "no-store":
			cc.NoStore = true
		case "no-transform":
			cc.NoTransform = true
		}
	}
	return cc, nil
}

// seconds parses the delta-seconds argument of a freshness directive.
func seconds(key string, kv []string) (*time.Duration, error) {
	if len(kv) < 2 {
		return nil, &DirectiveError{Directive: key, Missing: true}
	}
	val := strings.TrimSpace(kv[1])
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return nil, &DirectiveError{Directive: key, Value: val}
	}
	if n > maxDeltaSeconds {
		n = maxDeltaSeconds
	}
	d := time.Duration(n) * time.Second
	return &d, nil
}
