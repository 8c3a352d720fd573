// Package tlsconn implements the transport.IConnector interface for
// TLS-wrapped TCP sockets. The connector performs the handshake as part of
// Connect, supports custom trust roots and a self-signed opt-in, and keeps
// a session-resumption cache that outlives individual connections: a
// replaced connection resumes the previous session instead of paying for a
// full handshake.
package tlsconn
