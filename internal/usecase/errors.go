package usecase

import (
	"context"
	"errors"
	"fmt"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/integrations/gemini"
	"monastery-guide/internal/integrations/imagesearch"
)

type ErrorCode string

const (
	ErrorInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrorNotFound       ErrorCode = "NOT_FOUND"
	ErrorNotInitialized ErrorCode = "NOT_INITIALIZED"
	ErrorUpstream       ErrorCode = "UPSTREAM_ERROR"
	ErrorInternal       ErrorCode = "INTERNAL_ERROR"
)

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// EntityNotFoundError reports a catalog id with no record.
type EntityNotFoundError struct {
	ID int
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("usecase: monastery %d not found", e.ID)
}

// InvalidTopicError reports an insight topic outside domain.Topics.
type InvalidTopicError struct {
	Topic domain.TopicKind
}

func (e *InvalidTopicError) Error() string {
	return fmt.Sprintf("usecase: unknown insight topic %q", e.Topic)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}

// classifyUpstream maps an integration error onto the coded taxonomy.
func classifyUpstream(prefix string, err error) *Error {
	var malformed *gemini.MalformedResponseError
	switch {
	case errors.Is(err, gemini.ErrNotInitialized), errors.Is(err, imagesearch.ErrNotInitialized):
		return newError(ErrorNotInitialized, prefix+"_not_initialized", err)
	case errors.As(err, &malformed):
		return newError(ErrorUpstream, prefix+"_malformed_response", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return newError(ErrorInternal, prefix+"_cancelled", err)
	}
	if _, ok := upstreamStatusCode(err); ok {
		return newError(ErrorUpstream, prefix+"_status_error", err)
	}
	return newError(ErrorUpstream, prefix+"_error", err)
}
