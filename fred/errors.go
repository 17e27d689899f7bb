package fred

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the FRED client. Typed errors below match them
// with errors.Is.
var (
	// ErrTransport indicates the request never produced a usable response.
	ErrTransport = errors.New("fred transport failure")
	// ErrMalformedResponse indicates the response body could not be mapped to a record.
	ErrMalformedResponse = errors.New("malformed fred response")
	// ErrUnknownEnumValue indicates a wire string outside the known vocabulary.
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrInvalidParameter indicates a parameter combination the API would reject.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrClientClosed is returned by calls made after Close.
	ErrClientClosed = errors.New("fred client is closed")
	// ErrAPIKeyRequired is returned by New when no API key is given.
	ErrAPIKeyRequired = errors.New("fred API key is required")
)

// TransportError represents a failed round trip: connection errors,
// timeouts and non-2xx statuses.
type TransportError struct {
	Path       string
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("fred API error: %s: status %d: %s", e.Path, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("fred API error: %s: status %d", e.Path, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fred request %s failed: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("fred request %s failed", e.Path)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// IsNotFound checks if the error indicates a not found response
func (e *TransportError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsBadRequest checks if the API rejected the query
func (e *TransportError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *TransportError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// MalformedResponseError reports a response that is not well-formed XML or
// lacks a required field.
type MalformedResponseError struct {
	Element string
	Field   string
	Reason  string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	msg := "malformed response"
	if e.Element != "" {
		msg += " in <" + e.Element + ">"
	}
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// UnknownEnumValueError reports a wire string that no constant of Kind encodes to.
type UnknownEnumValueError struct {
	Kind  string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Kind, e.Value)
}

func (e *UnknownEnumValueError) Is(target error) bool { return target == ErrUnknownEnumValue }

// InvalidParameterError is returned by the query builder before any request is made.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }

func invalidParam(param, format string, args ...any) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
