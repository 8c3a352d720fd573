// Package rpc provides the client-side transport for the ucall JSON-RPC
// protocol, carried either over plain sockets framed with HTTP-style
// headers or over raw sockets with a NUL-sentinel framing scheme.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the transport,
//     including the envelope protocol, configuration structures, the error
//     taxonomy and logging.
//
//   - serializer: Envelope serialization to and from the canonical JSON
//     text form.
//
//   - framing: Transport-specific frame writing and chunk-tolerant frame
//     reading for the HTTP and raw modes.
//
//   - transport: Connection lifecycle management with pluggable connectors
//     (TCP, unix-domain, TLS with session resumption) and a non-consuming
//     liveness probe.
//
//   - client: The client façade composing the layers into a single
//     synchronous Call operation, plus the Result wrapper.
package rpc
