package gemini

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when Generate is called before Initialize.
var ErrNotInitialized = errors.New("gemini: client not initialized")

const unknownErrorMessage = "Unknown error"

// UpstreamError captures a non-2xx response from the generative endpoint.
// Message carries the provider-reported error message.
type UpstreamError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini: upstream status %d from %s: %s", e.StatusCode, e.URL, e.Message)
}

func (e *UpstreamError) HTTPStatusCode() int {
	return e.StatusCode
}

// MalformedResponseError is returned when a successful response does not
// carry candidates[0].content.parts[0].text.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return "gemini: malformed response: " + e.Reason
	}
	return fmt.Sprintf("gemini: malformed response: %s: %v", e.Reason, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
