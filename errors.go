package ultralite

import (
	"errors"
	"fmt"
)

// errInvalidUTF8 is the cause carried by a DecodeError when a body declared
// (or defaulted) as UTF-8 contains invalid byte sequences.
var errInvalidUTF8 = errors.New("body is not valid UTF-8")

// TLSError reports that an encrypted transport could not be constructed.
// It is returned before any network attempt and is distinct from ConnError,
// which covers failures at dispatch time.
type TLSError struct {
	Err error
}

// Error returns the error message
func (e *TLSError) Error() string {
	return fmt.Sprintf("ultralite: building TLS transport: %v", e.Err)
}

// Unwrap returns the underlying construction error
func (e *TLSError) Unwrap() error { return e.Err }

// ProtocolError reports an attempt to downgrade a chain from an encrypted
// transport to a plain one. It is returned before any connection is opened.
type ProtocolError struct {
	URL string
}

// Error returns the error message
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("ultralite: chain is locked to TLS, refusing plain request to %s", e.URL)
}

// ConnError reports a connection-level failure at dispatch time: DNS
// resolution, TCP connect, TLS handshake, or a failed body read. The core
// never retries; retry policy belongs to the caller.
type ConnError struct {
	URL string
	Err error
}

// Error returns the error message
func (e *ConnError) Error() string {
	return fmt.Sprintf("ultralite: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *ConnError) Unwrap() error { return e.Err }

// StatusError carries a status code outside the [200,300) range together
// with its reason phrase. It is returned only by Response.RaiseForStatus,
// never implicitly by dispatch.
type StatusError struct {
	Code   int
	Reason string
}

// Error returns the error message
func (e *StatusError) Error() string {
	return fmt.Sprintf("ultralite: status code not in 2XX range: %d - %s", e.Code, e.Reason)
}

// DecodeError reports a failure to decode a response body as text or JSON.
// It is distinguishable from transport errors so callers can tell a bad
// payload apart from a bad connection.
type DecodeError struct {
	What string // "text" or "json"
	Err  error
}

// Error returns the error message
func (e *DecodeError) Error() string {
	return fmt.Sprintf("ultralite: decoding response %s: %v", e.What, e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error { return e.Err }

// NotImplementedError reports a request method outside the supported verb
// set.
type NotImplementedError struct {
	Method string
}

// Error returns the error message
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("ultralite: method %s is not implemented", e.Method)
}
