package tlsconn

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"

	"github.com/ucall-rpc/ucall-go/rpc/common"
	"github.com/ucall-rpc/ucall-go/rpc/transport"
	"github.com/ucall-rpc/ucall-go/rpc/transport/base"
)

// sessionCacheSize bounds the resumption cache. One server is ever dialed
// per connector, so a handful of tickets is plenty.
const sessionCacheSize = 8

// clientConnector implements the IConnector interface for TLS-wrapped TCP
// sockets. The tls.Config (and with it the session cache) lives on the
// connector, so resumption state survives connection replacements for the
// lifetime of the owning client.
type clientConnector struct {
	conf *tls.Config
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "tls"
}

func (c *clientConnector) Connect(endpoint string) (net.Conn, error) {
	tcpConn, err := net.Dial("tcp", endpoint)
	if err != nil {
		return nil, err
	}

	// tls.Client resumes from the session cache when a usable ticket
	// exists and falls back to a full handshake on its own when the server
	// rejects it. Resumption is an optimization, never an error source.
	tlsConn := tls.Client(tcpConn, c.conf)
	if err := tlsConn.Handshake(); err != nil {
		_ = tcpConn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}
	return tlsConn, nil
}

func (c *clientConnector) UpgradeConnection(conn net.Conn, config common.ClientConfig) error {
	// Tuning applies to the carrier socket underneath the record layer.
	if tc, ok := conn.(*tls.Conn); ok {
		return base.TuneTCP(tc.NetConn(), config)
	}
	return nil
}

// --------------------------------------------------------------------------
// Connector Factory Method
// --------------------------------------------------------------------------

// NewTLSConnector creates a TLS connector from the client configuration.
// It loads the trust roots once; every connection opened through the
// connector shares them and the session-resumption cache.
func NewTLSConnector(config common.ClientConfig) (transport.IConnector, error) {
	conf := &tls.Config{
		ServerName: config.Host,
	}

	if config.TLS.CACertFile != "" {
		pem, err := os.ReadFile(config.TLS.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", config.TLS.CACertFile)
		}
		conf.RootCAs = pool
	}

	if config.TLS.AllowSelfSigned {
		// Opt-in for development servers: disables hostname verification
		// and certificate validation.
		conf.InsecureSkipVerify = true
	}

	if config.TLS.SessionResumption {
		conf.ClientSessionCache = tls.NewLRUClientSessionCache(sessionCacheSize)
	}

	return &clientConnector{conf: conf}, nil
}
