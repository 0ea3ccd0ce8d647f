// Package apierror decodes the error envelope returned by the Karyana
// backend. Every 4xx/5xx response carries a JSON body with a "message"
// field; the UI shows that message when present and a generic fallback
// otherwise, so remote error text is never lost silently.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// RemoteError is a non-2xx response from the backend.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote error: status %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the error is a remote 404.
func (e *RemoteError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// envelope matches the backend's error body: {"message": "..."}.
type envelope struct {
	Message string `json:"message"`
}

// FromResponse builds a RemoteError from a response body. A body that is
// not the expected envelope yields an error with an empty message.
func FromResponse(status int, body []byte) *RemoteError {
	var env envelope
	_ = json.Unmarshal(body, &env)
	return &RemoteError{StatusCode: status, Message: env.Message}
}

// UserMessage returns the server-provided message for err when present,
// else fallback. This is the single rule for notification text.
func UserMessage(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}

// IsNotFound reports whether err wraps a remote 404.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.NotFound()
}
