package tcp

import (
	"net"

	"github.com/ucall-rpc/ucall-go/rpc/common"
	"github.com/ucall-rpc/ucall-go/rpc/transport"
	"github.com/ucall-rpc/ucall-go/rpc/transport/base"
)

// clientConnector implements the IConnector interface for plain TCP sockets
type clientConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "tcp"
}

func (c *clientConnector) Connect(endpoint string) (net.Conn, error) {
	return net.Dial("tcp", endpoint)
}

func (c *clientConnector) UpgradeConnection(conn net.Conn, config common.ClientConfig) error {
	return base.TuneTCP(conn, config)
}

// --------------------------------------------------------------------------
// Connector Factory Method
// --------------------------------------------------------------------------

// NewTCPConnector creates a new plain TCP connector
func NewTCPConnector() transport.IConnector {
	return &clientConnector{}
}
