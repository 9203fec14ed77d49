package twitter

import (
	"errors"

	"github.com/kbukum/gokit/httpclient"
)

// Validation errors, raised before any network I/O.
var (
	ErrMissingAPIKey   = errors.New("twitter: api key is required")
	ErrNoIdentifier    = errors.New("twitter: either username or user id must be provided")
	ErrBothIdentifiers = errors.New("twitter: username and user id are mutually exclusive")
)

// UserQuery identifies a user by exactly one of username or numeric id.
type UserQuery struct {
	Username string
	UserID   string
}

// validate enforces the username/user-id exclusivity rule.
func (q UserQuery) validate() error {
	switch {
	case q.Username == "" && q.UserID == "":
		return ErrNoIdentifier
	case q.Username != "" && q.UserID != "":
		return ErrBothIdentifiers
	}
	return nil
}

// params returns the identifying query parameter.
func (q UserQuery) params() map[string]string {
	if q.Username != "" {
		return map[string]string{"username": q.Username}
	}
	return map[string]string{"user_id": q.UserID}
}

// IsTransportError reports whether err is a connection, DNS, or timeout
// failure. API-level non-2xx statuses are never surfaced as errors; callers
// inspect Response.StatusCode instead.
func IsTransportError(err error) bool {
	return httpclient.IsConnection(err) || httpclient.IsTimeout(err)
}
