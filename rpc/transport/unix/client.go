package unix

import (
	"net"

	"github.com/ucall-rpc/ucall-go/rpc/common"
	"github.com/ucall-rpc/ucall-go/rpc/transport"
)

// clientConnector implements the IConnector interface for unix-domain sockets
type clientConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "unix"
}

func (c *clientConnector) Connect(endpoint string) (net.Conn, error) {
	return net.Dial("unix", endpoint)
}

func (c *clientConnector) UpgradeConnection(conn net.Conn, config common.ClientConfig) error {
	uc, ok := conn.(*net.UnixConn)
	if !ok {
		return nil
	}
	if config.Socket.WriteBufferSize > 0 {
		if err := uc.SetWriteBuffer(config.Socket.WriteBufferSize); err != nil {
			return err
		}
	}
	if config.Socket.ReadBufferSize > 0 {
		if err := uc.SetReadBuffer(config.Socket.ReadBufferSize); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Connector Factory Method
// --------------------------------------------------------------------------

// NewUnixConnector creates a new unix-domain socket connector
func NewUnixConnector() transport.IConnector {
	return &clientConnector{}
}
