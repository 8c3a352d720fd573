// Package common provides the core data structures and utilities shared
// across the ucall client transport. It defines the envelope protocol,
// configuration structures and error taxonomy used by the other packages.
//
// The package focuses on:
//   - Envelope definition for request/response communication, independent
//     of the transport framing
//   - Parameter packing (positional and named variants, base64 packing of
//     binary blobs)
//   - Immutable client configuration constructed once per client instance
//   - Transport fault taxonomy as wrappable sentinel errors
//   - Custom logging implementation integrated with the dragonboat logger
//     registry
//
// Key Components:
//
//   - Request/Response: Core envelope structures for all calls. A request
//     always serializes method, params, id and the protocol version tag; a
//     response carries either a result or an error, never both.
//
//   - Params: Parameter variant (Positional or Named) whose []byte values
//     are transparently base64-packed into transportable text.
//
//   - ClientConfig: Configuration for one client instance, covering the
//     endpoint, framing mode, TLS settings and socket tuning.
//
//   - RemoteError: The error field of a response envelope surfaced as a
//     normal failure result rather than a transport fault.
package common
