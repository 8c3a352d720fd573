package base

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// testConnector dials plain TCP and optionally fails the upgrade step
type testConnector struct {
	upgradeErr error
}

func (c *testConnector) GetName() string { return "test" }

func (c *testConnector) Connect(endpoint string) (net.Conn, error) {
	return net.Dial("tcp", endpoint)
}

func (c *testConnector) UpgradeConnection(conn net.Conn, config common.ClientConfig) error {
	return c.upgradeErr
}

// startListener starts a TCP listener on a free loopback port and hands each
// accepted connection to the returned channel
func startListener(t *testing.T) (net.Listener, chan net.Conn) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	accepted := make(chan net.Conn, 4)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			accepted <- conn
		}
	}()
	return ln, accepted
}

// managerFor creates a manager pointed at the listener's address
func managerFor(t *testing.T, ln net.Listener) *Manager {
	t.Helper()

	addr := ln.Addr().(*net.TCPAddr)
	m := NewManager(&testConnector{}, common.ClientConfig{
		Host: addr.IP.String(),
		Port: addr.Port,
	})
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// waitClosed polls the liveness probe until it reports a dead peer. The FIN
// from the remote close takes a moment to arrive.
func waitClosed(t *testing.T, m *Manager) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		closed, err := m.IsClosed()
		if err != nil {
			t.Fatalf("liveness probe failed: %v", err)
		}
		if closed {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("connection never reported closed after peer close")
}

// TestManagerLazyDial tests that no connection exists before the first use
func TestManagerLazyDial(t *testing.T) {
	ln, _ := startListener(t)
	m := managerFor(t, ln)

	if m.Conn() != nil {
		t.Fatal("manager owns a connection before the first EnsureConnected")
	}
	closed, err := m.IsClosed()
	if err != nil {
		t.Fatalf("IsClosed() failed: %v", err)
	}
	if !closed {
		t.Error("IsClosed() = false with no connection")
	}

	conn, err := m.EnsureConnected()
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if conn == nil || m.Conn() != conn {
		t.Error("manager does not own the returned connection")
	}
}

// TestManagerReusesLiveConnection tests that repeated calls reuse one socket
func TestManagerReusesLiveConnection(t *testing.T) {
	ln, _ := startListener(t)
	m := managerFor(t, ln)

	first, err := m.EnsureConnected()
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	for i := 0; i < 3; i++ {
		conn, err := m.EnsureConnected()
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if conn != first {
			t.Fatalf("call %d replaced a live connection", i)
		}
	}
}

// TestManagerReplacesClosedConnection tests transparent replacement after the
// peer hangs up
func TestManagerReplacesClosedConnection(t *testing.T) {
	ln, accepted := startListener(t)
	m := managerFor(t, ln)

	first, err := m.EnsureConnected()
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	serverSide := <-accepted
	_ = serverSide.Close()
	waitClosed(t, m)

	replacement, err := m.EnsureConnected()
	if err != nil {
		t.Fatalf("failed to replace connection: %v", err)
	}
	if replacement == first {
		t.Error("manager handed out the dead connection again")
	}
	if replacement.LocalAddr().String() == first.LocalAddr().String() {
		t.Error("replacement reuses the old local address, likely the same socket")
	}
}

// TestManagerProbeKeepsPendingData tests that the liveness probe never
// consumes bytes waiting on the socket
func TestManagerProbeKeepsPendingData(t *testing.T) {
	ln, accepted := startListener(t)
	m := managerFor(t, ln)

	conn, err := m.EnsureConnected()
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	serverSide := <-accepted
	if _, err := serverSide.Write([]byte("x")); err != nil {
		t.Fatalf("server write failed: %v", err)
	}

	// Give the byte time to arrive, then probe repeatedly.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 3; i++ {
		closed, err := m.IsClosed()
		if err != nil {
			t.Fatalf("liveness probe failed: %v", err)
		}
		if closed {
			t.Fatal("probe reports closed while data is pending")
		}
	}

	buf := make([]byte, 1)
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, err := conn.Read(buf); err != nil {
		t.Fatalf("pending byte was lost: %v", err)
	}
	if buf[0] != 'x' {
		t.Errorf("read %q, expected %q", buf, "x")
	}
}

// TestManagerDialFailure tests the error classification on a dead endpoint
func TestManagerDialFailure(t *testing.T) {
	ln, _ := startListener(t)
	m := managerFor(t, ln)
	_ = ln.Close()

	if _, err := m.EnsureConnected(); !errors.Is(err, common.ErrConnectionFailed) {
		t.Errorf("EnsureConnected() error = %v, expected ErrConnectionFailed", err)
	}
}

// TestManagerUpgradeFailure tests that a failed upgrade surfaces as a
// connect fault and leaves no owned connection behind
func TestManagerUpgradeFailure(t *testing.T) {
	ln, _ := startListener(t)
	addr := ln.Addr().(*net.TCPAddr)

	m := NewManager(&testConnector{upgradeErr: errors.New("refused")}, common.ClientConfig{
		Host: addr.IP.String(),
		Port: addr.Port,
	})

	if _, err := m.EnsureConnected(); !errors.Is(err, common.ErrConnectionFailed) {
		t.Errorf("EnsureConnected() error = %v, expected ErrConnectionFailed", err)
	}
	if m.Conn() != nil {
		t.Error("manager kept a connection whose upgrade failed")
	}
}

// TestManagerCloseThenReuse tests that a closed manager dials fresh
func TestManagerCloseThenReuse(t *testing.T) {
	ln, _ := startListener(t)
	m := managerFor(t, ln)

	if _, err := m.EnsureConnected(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
	if m.Conn() != nil {
		t.Fatal("manager owns a connection after Close")
	}

	if _, err := m.EnsureConnected(); err != nil {
		t.Fatalf("failed to reconnect after Close: %v", err)
	}
}
