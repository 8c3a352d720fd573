// Package base provides the connection manager shared by all transport
// connectors. It implements the connection lifecycle independent of the
// specific network protocol (TCP, unix-domain, TLS), which plugs in through
// the transport.IConnector interface.
//
// The package focuses on:
//   - Exclusive ownership of a single connection per client instance
//   - Lazy dialing: no socket exists until the first call needs one
//   - A liveness probe that peeks without consuming application data
//   - Transparent replacement of connections whose peer went away
//   - Socket tuning shared by the connector implementations
//
// Liveness Semantics:
//
//	The probe peeks one byte on the raw socket with MSG_PEEK|MSG_DONTWAIT.
//	A zero-byte result means the peer closed; a would-block result means
//	the connection is alive with no data pending; any other errno is a
//	fault and propagates. TLS connections are probed on their underlying
//	TCP socket, so plain and TLS modes share one semantics.
//
// Thread Safety:
//
//	The manager is intentionally not synchronized. A client instance runs
//	exactly one call at a time and owns its manager exclusively; consumers
//	wanting concurrency use multiple client instances.
package base
