package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionInvalidated marks a request rejected because the credential is no
// longer accepted. The credential slot has already been cleared and the
// invalidation observer notified by the time callers see this error.
var ErrSessionInvalidated = errors.New("session invalidated")

// ErrNoResponse marks a transport-level failure: the request left the client
// but no HTTP response came back.
var ErrNoResponse = errors.New("no response from server")

// ErrRequestSetup marks a failure before the request was sent, such as an
// unserializable body or a malformed URL.
var ErrRequestSetup = errors.New("request setup failed")

// StatusError is a response the server answered with a non-success status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("server rejected request: status %d", e.StatusCode)
}

// Is reports ErrSessionInvalidated for authentication failures so callers can
// branch with errors.Is without inspecting the status code.
func (e *StatusError) Is(target error) bool {
	return target == ErrSessionInvalidated && e.StatusCode == http.StatusUnauthorized
}
