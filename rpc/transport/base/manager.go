package base

import (
	"fmt"
	"net"

	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/ucall-rpc/ucall-go/rpc/common"
	"github.com/ucall-rpc/ucall-go/rpc/transport"
)

var Logger = logger.GetLogger("transport/rpc")

// Manager owns the single connection of one client instance. It dials
// lazily on the first call, probes liveness before reuse, and transparently
// replaces a connection whose peer went away. It is not safe for concurrent
// use: a client runs exactly one call at a time, so no locking exists here.
type Manager struct {
	connector transport.IConnector
	config    common.ClientConfig
	conn      net.Conn

	dials      *metrics.Counter
	reconnects *metrics.Counter
}

// NewManager creates a connection manager for the given connector and
// configuration. No connection is opened until the first EnsureConnected.
func NewManager(connector transport.IConnector, config common.ClientConfig) *Manager {
	name := connector.GetName()
	return &Manager{
		connector:  connector,
		config:     config,
		dials:      metrics.GetOrCreateCounter(fmt.Sprintf(`ucall_transport_dials_total{transport=%q}`, name)),
		reconnects: metrics.GetOrCreateCounter(fmt.Sprintf(`ucall_transport_reconnects_total{transport=%q}`, name)),
	}
}

// EnsureConnected returns a connection known to be alive, opening or
// replacing one if needed. Connect failures surface immediately wrapping
// common.ErrConnectionFailed; there is no silent retry.
func (m *Manager) EnsureConnected() (net.Conn, error) {
	if m.conn != nil {
		closed, err := m.IsClosed()
		if err != nil {
			return nil, err
		}
		if !closed {
			return m.conn, nil
		}

		Logger.Infof("peer closed connection to %s, replacing", m.config.Endpoint())
		_ = m.conn.Close()
		m.conn = nil
		m.reconnects.Inc()
	}

	endpoint := m.config.Endpoint()
	conn, err := m.connector.Connect(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s dial %s: %v", common.ErrConnectionFailed, m.connector.GetName(), endpoint, err)
	}

	if err := m.connector.UpgradeConnection(conn, m.config); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: upgrade %s connection: %v", common.ErrConnectionFailed, m.connector.GetName(), err)
	}

	m.conn = conn
	m.dials.Inc()
	Logger.Debugf("connected to %s via %s", endpoint, m.connector.GetName())
	return m.conn, nil
}

// IsClosed reports whether the remote side closed the current connection.
// The probe never consumes application data; see probe.go for the exact
// semantics. A nil connection counts as closed.
func (m *Manager) IsClosed() (bool, error) {
	if m.conn == nil {
		return true, nil
	}
	return peerClosed(m.conn)
}

// Conn returns the currently owned connection, or nil before the first
// dial. Callers must not hold it across calls; it may be replaced.
func (m *Manager) Conn() net.Conn {
	return m.conn
}

// Close releases the owned connection. The manager can be reused; the next
// EnsureConnected dials fresh.
func (m *Manager) Close() error {
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}
