package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Framing Mode
// --------------------------------------------------------------------------

// FramingMode selects how envelopes are wrapped on the wire.
type FramingMode string

const (
	// FramingHTTP wraps each envelope in an HTTP/1.1 request line, a fixed
	// header block with Content-Length, and a blank-line separator.
	FramingHTTP FramingMode = "http"
	// FramingRaw terminates each envelope with a single NUL sentinel byte.
	FramingRaw FramingMode = "raw"
)

// --------------------------------------------------------------------------
// Client Configuration
// --------------------------------------------------------------------------

// SocketConf holds low-level socket tuning applied when a connection is
// established. Zero values leave the kernel defaults untouched.
type SocketConf struct {
	WriteBufferSize int
	ReadBufferSize  int
	TCPNoDelay      bool
	TCPKeepAliveSec int
	TCPLingerSec    int
}

// TLSConf holds the TLS-mode settings of a client.
type TLSConf struct {
	// Enabled switches the client to a TLS-wrapped connection.
	Enabled bool
	// CACertFile optionally points to a PEM bundle used as the trust root
	// instead of the system pool.
	CACertFile string
	// AllowSelfSigned disables hostname verification and certificate
	// validation. Security-relevant opt-in for development setups.
	AllowSelfSigned bool
	// SessionResumption enables caching of TLS session state across
	// connection replacements to skip full handshake renegotiation.
	SessionResumption bool
}

// ClientConfig holds all configuration parameters for one client instance.
// It is constructed once at client creation and passed down to the transport
// and framing layers; nothing is recomputed per call.
type ClientConfig struct {
	// Host and Port locate the server. For unix-domain endpoints Host
	// carries the socket path (prefixed "unix://") and Port is ignored.
	Host string
	Port int

	// Framing selects the wire framing mode.
	Framing FramingMode

	// UserAgent is sent in the User-Agent header in HTTP framing mode.
	UserAgent string

	// TimeoutSecond applies read/write deadlines around each call's socket
	// operations. Zero disables deadlines: a hung peer hangs the call.
	TimeoutSecond int

	// Socket holds low-level socket tuning.
	Socket SocketConf

	// TLS holds the TLS-mode settings.
	TLS TLSConf

	// LogLevel controls the verbosity of the rpc loggers.
	LogLevel string
}

// Endpoint returns the dialable address for the configured server.
func (c *ClientConfig) Endpoint() string {
	if path, ok := strings.CutPrefix(c.Host, "unix://"); ok {
		return path
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsUnix reports whether the configured endpoint is a unix-domain socket.
func (c *ClientConfig) IsUnix() bool {
	return strings.HasPrefix(c.Host, "unix://")
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint())
	addField("Framing", string(c.Framing))
	addField("User Agent", c.UserAgent)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	addSection("TLS")
	addField("Enabled", strconv.FormatBool(c.TLS.Enabled))
	if c.TLS.Enabled {
		addField("CA Certificate", c.TLS.CACertFile)
		addField("Allow Self-Signed", strconv.FormatBool(c.TLS.AllowSelfSigned))
		addField("Session Resumption", strconv.FormatBool(c.TLS.SessionResumption))
	}

	addSection("Socket")
	addField("Write Buffer", fmt.Sprintf("%d bytes", c.Socket.WriteBufferSize))
	addField("Read Buffer", fmt.Sprintf("%d bytes", c.Socket.ReadBufferSize))
	addField("TCP NoDelay", strconv.FormatBool(c.Socket.TCPNoDelay))
	addField("TCP KeepAlive", fmt.Sprintf("%d sec", c.Socket.TCPKeepAliveSec))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
