// Package client implements the ucall client façade. It composes the
// envelope serializer, the frame codec and the connection manager into a
// single synchronous Call operation.
//
// The package focuses on:
//   - One full round trip per call: ensure a live connection, encode the
//     envelope, frame it, write, read one frame, decode
//   - A Result wrapper exposing the raw envelope, accessors that fail on
//     error envelopes, and base64 decoding of binary-blob results
//   - Per-method call metrics shared process-wide
//
// Error Handling:
//
//	Transport faults (connection, framing, envelope parsing) surface as
//	errors from Call, wrapping the sentinels in rpc/common. A response
//	envelope carrying an error field is not a transport fault: Call
//	returns a Result whose Err/JSON accessors report the remote error.
//	Nothing is retried automatically; after a fault the next call opens a
//	fresh connection through the manager.
//
// Concurrency:
//
//	A Client is fully synchronous and owns its connection exclusively.
//	Calls on one Client are strictly sequential. For concurrent calls use
//	one Client per goroutine; they share nothing but the metrics registry.
//
// Usage Example:
//
//	c, _ := client.New(common.ClientConfig{
//		Host:    "127.0.0.1",
//		Port:    8545,
//		Framing: common.FramingHTTP,
//	})
//	defer c.Close()
//
//	res, err := c.Call("echo", common.Positional(42))
//	if err != nil {
//		// transport fault
//	}
//	value, err := res.JSON() // fails if the server returned an error field
package client
