package twitter

import (
	"encoding/json"
	"fmt"
)

// Response is the raw result of an API call. The client hands it to the
// caller unconditionally; inspect StatusCode to distinguish API-level errors
// from successful lookups.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the flattened response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
