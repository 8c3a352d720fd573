// Package transport defines the interfaces and abstractions for the ucall
// connection layer. It provides a common contract that all connector
// implementations must fulfill, enabling protocol-agnostic connection
// management.
//
// The package focuses on:
//   - Defining a clear interface for opening and tuning a single connection
//   - Enabling multiple connector implementations (TCP, unix-domain, TLS)
//   - Keeping connection ownership and liveness in one place (the base
//     manager) regardless of the underlying protocol
//
// Key Components:
//
//   - IConnector: Interface for connector implementations that open and
//     upgrade a single connection to an endpoint.
//
//   - base.Manager: Connection owner that dials lazily, probes liveness
//     without consuming application data, and transparently replaces
//     connections found closed.
package transport
