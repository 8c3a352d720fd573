package framing

import (
	"io"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// MaxFrameSize caps how many bytes a reader accumulates for one frame.
// The protocol itself defines no limit; the cap is a deliberate guard
// against unbounded growth on a misbehaving peer.
const MaxFrameSize = 64 << 20 // 64 MiB

// readChunkSize is the buffer size for each read off the connection.
// Reads may return any number of bytes up to this; the readers never
// assume a frame boundary aligns with a read boundary.
const readChunkSize = 4096

// IFrameCodec wraps serialized envelope bytes in the transport-specific
// frame and extracts one complete frame body from a byte stream. Codecs are
// pure byte logic: they never own a socket, so they are testable against
// any io.Reader/io.Writer.
type IFrameCodec interface {
	// WriteFrame writes one complete frame wrapping body to w.
	// The body bytes are passed through untouched; only the wrapping
	// differs per mode.
	WriteFrame(w io.Writer, body []byte) error

	// ReadFrame reads bytes off r until one complete frame is assembled
	// and returns the frame's body. It returns an error wrapping
	// common.ErrConnectionClosed if the stream ends before any byte of the
	// frame was read, common.ErrIncompleteFrame if the stream ends
	// mid-frame or the frame cannot complete, and common.ErrFrameTooLarge
	// if the accumulation cap is exceeded.
	ReadFrame(r io.Reader) ([]byte, error)

	// GetName returns the name of the framing mode (e.g. "http", "raw")
	GetName() string
}

// NewFrameCodec creates the frame codec for the configured framing mode.
func NewFrameCodec(config common.ClientConfig) IFrameCodec {
	if config.Framing == common.FramingHTTP {
		return NewHTTPFrameCodec(config.Endpoint(), config.UserAgent)
	}
	return NewRawFrameCodec()
}
