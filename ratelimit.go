package twitter

import (
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// Quota headers attached by the RapidAPI gateway.
const (
	headerRateLimitLimit     = "x-ratelimit-rapid-free-plans-hard-limit-limit"
	headerRateLimitRemaining = "x-ratelimit-rapid-free-plans-hard-limit-remaining"
	headerRateLimitReset     = "x-ratelimit-rapid-free-plans-hard-limit-reset"
)

// RateLimit is a snapshot of the API quota, parsed from the headers of the
// most recently completed request.
type RateLimit struct {
	// Limit is the total number of requests allowed in the current window.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Reset is the number of seconds until the window resets.
	Reset int64
}

// ResetAt returns the wall-clock time the quota window resets, relative to now.
func (r RateLimit) ResetAt(now time.Time) time.Time {
	return now.Add(time.Duration(r.Reset) * time.Second)
}

// parseRateLimit extracts a quota snapshot from response headers.
// It reports false unless all three quota headers are present and numeric.
func parseRateLimit(headers map[string]string) (RateLimit, bool) {
	limit, err := strconv.Atoi(headerValue(headers, headerRateLimitLimit))
	if err != nil {
		return RateLimit{}, false
	}
	remaining, err := strconv.Atoi(headerValue(headers, headerRateLimitRemaining))
	if err != nil {
		return RateLimit{}, false
	}
	reset, err := strconv.ParseInt(headerValue(headers, headerRateLimitReset), 10, 64)
	if err != nil {
		return RateLimit{}, false
	}
	return RateLimit{Limit: limit, Remaining: remaining, Reset: reset}, true
}

// headerValue looks up a header case-insensitively. The transport flattens
// headers into canonical MIME form, while the gateway documents them lowercase.
func headerValue(headers map[string]string, key string) string {
	if v, ok := headers[key]; ok {
		return v
	}
	if v, ok := headers[textproto.CanonicalMIMEHeaderKey(key)]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
