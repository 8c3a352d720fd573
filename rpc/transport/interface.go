package transport

import (
	"net"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// IConnector defines the interface for transport-specific connection
// operations. A connector only knows how to open and tune a single
// connection; ownership, liveness and replacement live in the base manager.
type IConnector interface {
	// Connect establishes a single connection to the endpoint. For TLS
	// connectors this includes the handshake, so a returned connection is
	// ready for application data.
	Connect(endpoint string) (net.Conn, error)

	// GetName returns the name of the transport type (e.g. "tcp", "tls")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an
	// established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error
}
