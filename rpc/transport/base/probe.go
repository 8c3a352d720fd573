package base

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// tlsProbeTimeout bounds the record-layer read of the TLS probe. Ciphertext
// already buffered in the kernel is processed immediately; the deadline only
// fires once the buffered records are drained.
const tlsProbeTimeout = 10 * time.Millisecond

// netConnWrapper is satisfied by wrappers exposing the underlying
// connection.
type netConnWrapper interface {
	NetConn() net.Conn
}

// peerClosed reports whether the remote side closed conn, without consuming
// application data and without blocking beyond the probe timeout.
//
// Plain connections are classified by the socket peek alone. TLS connections
// need a record-layer check on top: a closing TLS 1.3 peer leaves its
// session tickets and the close_notify alert as unread ciphertext in the
// kernel buffer, so pending bytes on the carrier socket prove nothing about
// liveness.
func peerClosed(conn net.Conn) (bool, error) {
	if tc, ok := conn.(*tls.Conn); ok {
		return tlsPeerClosed(tc)
	}
	_, closed, err := rawPeek(conn)
	return closed, err
}

// tlsPeerClosed classifies liveness at the record layer. The socket peek
// stays the fast path: an idle socket means a live peer, and a zero-byte
// peek means the peer vanished without even an alert. Only when ciphertext
// is pending does the record layer get to process it under a short read
// deadline: session tickets are absorbed and end in a timeout, close_notify
// surfaces as a clean EOF.
func tlsPeerClosed(tc *tls.Conn) (bool, error) {
	pending, closed, err := rawPeek(tc.NetConn())
	if err != nil {
		return false, err
	}
	if closed || !pending {
		return closed, nil
	}

	if err := tc.SetReadDeadline(time.Now().Add(tlsProbeTimeout)); err != nil {
		return false, fmt.Errorf("liveness probe: %v", err)
	}
	var buf [1]byte
	n, readErr := tc.Read(buf[:])
	if err := tc.SetReadDeadline(time.Time{}); err != nil {
		return false, fmt.Errorf("liveness probe: %v", err)
	}

	var nerr net.Error
	switch {
	case errors.As(readErr, &nerr) && nerr.Timeout():
		// Only non-data records were pending; the peer is alive.
		return false, nil
	case errors.Is(readErr, io.EOF):
		return true, nil
	case readErr != nil:
		return false, fmt.Errorf("liveness probe: %v", readErr)
	case n > 0:
		// An unsolicited application byte between calls breaks the
		// request/response contract; the connection cannot be reused.
		return true, nil
	}
	return false, nil
}

// rawPeek peeks one byte off the socket without consuming it and without
// blocking.
//
//	zero bytes read        => peer closed
//	EAGAIN (would block)   => socket idle and open
//	data pending           => bytes are waiting; what they mean is the
//	                          caller's concern
//	any other errno        => propagated as a fault, not guessed either way
func rawPeek(conn net.Conn) (pending bool, closed bool, err error) {
	raw := conn
	for {
		w, ok := raw.(netConnWrapper)
		if !ok {
			break
		}
		raw = w.NetConn()
	}

	sc, ok := raw.(syscall.Conn)
	if !ok {
		return false, false, fmt.Errorf("liveness probe: %T does not expose its socket", raw)
	}
	rc, err := sc.SyscallConn()
	if err != nil {
		return false, false, fmt.Errorf("liveness probe: %v", err)
	}

	var peekErr error
	ctrlErr := rc.Read(func(fd uintptr) bool {
		var buf [1]byte
		n, _, e := unix.Recvfrom(int(fd), buf[:], unix.MSG_PEEK|unix.MSG_DONTWAIT)
		switch {
		case e == unix.EAGAIN:
			// No data pending but the socket is open.
		case e != nil:
			peekErr = e
		case n == 0:
			closed = true
		default:
			pending = true
		}
		// Done either way: MSG_DONTWAIT means this never needs to wait
		// for readability.
		return true
	})
	if ctrlErr != nil {
		return false, false, fmt.Errorf("liveness probe: %v", ctrlErr)
	}
	if peekErr != nil {
		return false, false, fmt.Errorf("liveness probe: %v", peekErr)
	}
	return pending, closed, nil
}
