package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTimeout           = errors.New("request timeout")
	ErrTransport         = errors.New("transport failure")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrNoData            = errors.New("no data reported")
)

// TransportError carries the underlying cause of a failed round trip.
// It matches both ErrTransport and the cause with errors.Is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("http error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// MalformedResponseError reports an undecodable body or a body without the
// "code" discriminator.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedResponse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Reason)
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}
