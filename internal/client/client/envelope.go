package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// envelope is the body shape of every backend endpoint. Chat responses put
// their payload under "messages" instead of "data".
type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Messages json.RawMessage `json:"messages"`
}

var (
	errMissingStatus  = errors.New("missing status")
	errMissingPayload = errors.New("missing payload")
)

// decodeEnvelope parses body and turns an error status into an
// *ApplicationError. A body without a status is accepted only when it
// carries data, which is what the birthday endpoint sends.
func decodeEnvelope(op string, body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}

	switch strings.ToLower(strings.TrimSpace(env.Status)) {
	case statusSuccess:
		return &env, nil
	case statusError:
		return nil, &ApplicationError{Op: op, Message: env.Message}
	case "":
		if isEmpty(env.Data) {
			return nil, &ParseError{Op: op, Err: errMissingStatus}
		}
		return &env, nil
	default:
		return nil, &ParseError{Op: op, Err: fmt.Errorf("unknown status %q", env.Status)}
	}
}

func isEmpty(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// decodeList decodes an optional list payload; an absent payload is an
// empty list.
func decodeList[T any](op string, raw json.RawMessage) ([]T, error) {
	if isEmpty(raw) {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return out, nil
}

// decodeRequired decodes a payload that must be present.
func decodeRequired[T any](op string, raw json.RawMessage) (T, error) {
	var out T
	if isEmpty(raw) {
		return out, &ParseError{Op: op, Err: errMissingPayload}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ParseError{Op: op, Err: err}
	}
	return out, nil
}
