package client

import "fmt"

// TransportError reports a round-trip that never produced a response
// (connection refused, timeout, DNS).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body with a malformed or unexpected JSON
// shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("unexpected status %d", e.Code) }
