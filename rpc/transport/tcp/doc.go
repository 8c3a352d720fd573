// Package tcp implements the transport.IConnector interface for plain TCP
// sockets. It opens stream connections and applies the configured socket
// tuning (TCP_NODELAY, buffer sizes, keep-alive, linger).
package tcp
