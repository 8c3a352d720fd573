// Package framing wraps serialized envelopes in the transport-specific wire
// frame and reassembles complete frames from a live byte stream.
//
// Two framing modes exist:
//
//   - HTTP: a fixed POST request line and header block, a Content-Length
//     header computed from the body's byte length, a blank-line separator,
//     then the body. Responses are parsed by locating the header/body
//     separator and reading exactly Content-Length body bytes.
//
//   - Raw: the body bytes followed by a single NUL sentinel byte. No length
//     prefix exists; the sentinel is the only frame boundary.
//
// Both readers tolerate arbitrary read chunk sizes: separators and
// sentinels may span read boundaries, and bytes over-read past the header
// separator count toward the body. A stream that ends before any frame byte
// arrives is reported as common.ErrConnectionClosed; a stream that ends
// mid-frame as common.ErrIncompleteFrame.
//
// Codecs are pure byte logic over io.Reader/io.Writer. Socket ownership,
// liveness and reconnects live in the transport package.
package framing
