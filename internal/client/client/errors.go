package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	ErrResponseTooLarge = errors.New("response too large")
)

// NetworkErrorMessage is shown for any transport failure.
const NetworkErrorMessage = "Network error. Please try again."

// ApplicationError is a response the backend answered with status "error".
type ApplicationError struct {
	Op         string
	Message    string
	StatusCode int
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend error", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// ParseError reports a response body that does not have the expected shape.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UserMessage converts err into the text shown to the user. Backend
// messages are shown verbatim; anything else falls back to fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrUnavailable) {
		return NetworkErrorMessage
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
