package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a backend call failure. Auth failures are recovered
// centrally by forcing logout; the rest surface one user-visible message.
type Kind int

const (
	// KindTransport: no response received (network failure, timeout).
	KindTransport Kind = iota
	// KindAuth: 401, the universal re-authentication trigger.
	KindAuth
	// KindRejected: 4xx with a structured rejection payload.
	KindRejected
	// KindServerFault: unexpected 5xx.
	KindServerFault
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsAuthFailure(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}

func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindTransport
}

// UserMessage extracts the message to show the operator: the backend's
// detail when structured, a generic fallback otherwise.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// parseDetail pulls the human-readable message out of a FastAPI-style
// error body. `detail` may be a plain string or a list of validation
// records; anything else falls back to the given default.
func parseDetail(body []byte, fallback string) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return fallback
	}

	var asString string
	if err := json.Unmarshal(envelope.Detail, &asString); err == nil && asString != "" {
		return asString
	}

	var asRecords []struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Detail, &asRecords); err == nil && len(asRecords) > 0 {
		parts := make([]string, 0, len(asRecords))
		for _, r := range asRecords {
			switch {
			case r.Msg != "":
				parts = append(parts, r.Msg)
			case r.Message != "":
				parts = append(parts, r.Message)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}

	return fallback
}
