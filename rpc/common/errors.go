package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Transport Fault Taxonomy
// --------------------------------------------------------------------------

// Sentinel errors for the transport layer. Every fault surfaced by a call
// wraps exactly one of these, so callers can classify with errors.Is.
var (
	// ErrConnectionFailed is returned when the socket connect or the TLS
	// handshake fails. Fatal for that call, never retried automatically.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrConnectionClosed is returned when the peer closed the connection
	// before any frame byte was read.
	ErrConnectionClosed = errors.New("connection closed by peer")

	// ErrIncompleteFrame is returned when the stream ends (or the header
	// block never terminates) before a full frame was assembled.
	ErrIncompleteFrame = errors.New("incomplete frame")

	// ErrMalformedEnvelope is returned when the received bytes do not parse
	// as a well-formed envelope.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrFrameTooLarge is returned when a frame exceeds the reader's
	// accumulation cap.
	ErrFrameTooLarge = errors.New("frame exceeds maximum size")
)

// --------------------------------------------------------------------------
// Remote Errors
// --------------------------------------------------------------------------

// RemoteError carries the error field of a response envelope. It is a normal
// failure result of the call, not a transport fault: the frame arrived and
// parsed fine, the server just rejected the invocation.
type RemoteError struct {
	// Data is the raw JSON value of the envelope's error field.
	Data []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s", e.Data)
}
