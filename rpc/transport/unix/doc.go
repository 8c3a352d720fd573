// Package unix implements the transport.IConnector interface for
// unix-domain stream sockets, used with raw framing for same-host servers.
package unix
