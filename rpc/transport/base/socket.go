package base

import (
	"net"
	"time"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// TuneTCP applies the configured socket options to a TCP connection.
// Non-TCP connections pass through untouched, so connectors can call this
// unconditionally.
func TuneTCP(conn net.Conn, config common.ClientConfig) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}

	if err := tcpConn.SetNoDelay(config.Socket.TCPNoDelay); err != nil {
		return err
	}

	if config.Socket.WriteBufferSize > 0 {
		if err := tcpConn.SetWriteBuffer(config.Socket.WriteBufferSize); err != nil {
			return err
		}
	}

	if config.Socket.ReadBufferSize > 0 {
		if err := tcpConn.SetReadBuffer(config.Socket.ReadBufferSize); err != nil {
			return err
		}
	}

	if config.Socket.TCPKeepAliveSec > 0 {
		if err := tcpConn.SetKeepAlive(true); err != nil {
			return err
		}
		if err := tcpConn.SetKeepAlivePeriod(time.Duration(config.Socket.TCPKeepAliveSec) * time.Second); err != nil {
			return err
		}
	}

	if config.Socket.TCPLingerSec > 0 {
		if err := tcpConn.SetLinger(config.Socket.TCPLingerSec); err != nil {
			return err
		}
	}

	return nil
}
