package client

import (
	"math/rand"
	"time"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/ucall-rpc/ucall-go/rpc/common"
	"github.com/ucall-rpc/ucall-go/rpc/framing"
	"github.com/ucall-rpc/ucall-go/rpc/serializer"
	"github.com/ucall-rpc/ucall-go/rpc/transport"
	"github.com/ucall-rpc/ucall-go/rpc/transport/base"
	"github.com/ucall-rpc/ucall-go/rpc/transport/tcp"
	"github.com/ucall-rpc/ucall-go/rpc/transport/tlsconn"
	"github.com/ucall-rpc/ucall-go/rpc/transport/unix"
)

var Logger = logger.GetLogger("client")

// Default configuration values, matching the servers this client targets.
const (
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8545
	DefaultUserAgent = "go-ucall"
)

// Client is a synchronous caller against one server. It owns exactly one
// connection (through its manager) and runs one call at a time; consumers
// wanting parallel calls create multiple clients.
type Client struct {
	config     common.ClientConfig
	manager    *base.Manager
	codec      framing.IFrameCodec
	serializer serializer.IEnvelopeSerializer
}

// New creates a client from the given configuration. No connection is
// opened until the first call. The configuration is captured by value here
// and never recomputed per call.
func New(config common.ClientConfig) (*Client, error) {
	if config.Host == "" {
		config.Host = DefaultHost
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	if config.Framing == "" {
		config.Framing = common.FramingHTTP
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	connector, err := newConnector(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:     config,
		manager:    base.NewManager(connector, config),
		codec:      framing.NewFrameCodec(config),
		serializer: serializer.NewJSONSerializer(),
	}, nil
}

// newConnector selects the connector for the configured endpoint and mode.
func newConnector(config common.ClientConfig) (transport.IConnector, error) {
	switch {
	case config.IsUnix():
		return unix.NewUnixConnector(), nil
	case config.TLS.Enabled:
		return tlsconn.NewTLSConnector(config)
	default:
		return tcp.NewTCPConnector(), nil
	}
}

// Call invokes method with the given params and blocks until the complete
// response frame is read or a fault occurs. Nothing is retried: transport
// faults surface to the caller, and a replacement connection is only opened
// by the next call. A response envelope carrying an error field is a normal
// Result whose accessors fail; it is not returned as an error here.
func (c *Client) Call(method string, params common.Params) (*Result, error) {
	m := getCallMetrics(method)
	start := time.Now()

	res, err := c.invoke(method, params)
	if err != nil {
		m.errors.Inc()
		return nil, err
	}

	m.calls.Inc()
	m.duration.UpdateDuration(start)
	return res, nil
}

// invoke runs one full round trip: ensure a live connection, encode, frame,
// write, read one frame, decode.
func (c *Client) invoke(method string, params common.Params) (*Result, error) {
	id := uint32(rand.Intn(common.MaxCallID) + common.MinCallID)
	req := common.NewRequest(method, params, id)

	conn, err := c.manager.EnsureConnected()
	if err != nil {
		return nil, err
	}

	if c.config.TimeoutSecond > 0 {
		deadline := time.Now().Add(time.Duration(c.config.TimeoutSecond) * time.Second)
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, err
		}
		defer conn.SetDeadline(time.Time{})
	}

	body, err := c.serializer.SerializeRequest(req)
	if err != nil {
		return nil, err
	}

	if err := c.codec.WriteFrame(conn, body); err != nil {
		return nil, err
	}

	respBytes, err := c.codec.ReadFrame(conn)
	if err != nil {
		return nil, err
	}

	resp := &common.Response{}
	if err := c.serializer.DeserializeResponse(respBytes, resp); err != nil {
		return nil, err
	}

	Logger.Debugf("call %s (id %d) completed, %d response bytes", method, id, len(respBytes))
	return &Result{resp: resp}, nil
}

// Close releases the client's connection. The client stays usable; the next
// call dials fresh, though TLS session state is kept only as long as the
// client itself.
func (c *Client) Close() error {
	return c.manager.Close()
}
