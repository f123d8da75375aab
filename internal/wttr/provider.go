package wttr

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Provider fetches the report for one city. Implementations must be safe
// for concurrent use.
type Provider interface {
	Fetch(ctx context.Context, city string) (*Report, error)
}

var errNoCurrentCondition = errors.New("no current_condition in response")

// DecodeError carries the payload that failed to decode so the user can see
// what the endpoint actually sent.
type DecodeError struct {
	Err     error
	Payload string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode API response: %v\n\n-- API Payload --\n%s", e.Err, e.Payload)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// DecodeReport parses a j1 payload. A payload without a current condition
// is rejected.
func DecodeReport(body []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, &DecodeError{Err: err, Payload: prettyPayload(body)}
	}
	if len(r.CurrentCondition) == 0 {
		return nil, &DecodeError{Err: errNoCurrentCondition, Payload: prettyPayload(body)}
	}
	return &r, nil
}

func prettyPayload(body []byte) string {
	var generic interface{}
	if err := json.Unmarshal(body, &generic); err != nil {
		return string(body)
	}
	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return string(bytes.TrimSpace(body))
	}
	return string(out)
}
