// Package serializer provides envelope serialization for the ucall client
// transport. It defines a common interface and the JSON implementation used
// on the wire.
//
// The package focuses on:
//   - Providing a consistent interface between the client façade and the
//     envelope encoding
//   - Producing the canonical JSON-RPC 2.0 text form with deterministic key
//     presence (method, params, id, jsonrpc)
//   - Classifying parse failures as common.ErrMalformedEnvelope
//
// The wire contract is JSON-RPC 2.0 text, so JSON is the only serialization
// that can appear on this wire. The interface exists for testability: fakes
// can stand in for the codec without touching a socket.
//
// Thread Safety:
//
//	The serializer implementation is stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
package serializer
