package framing

import (
	"bytes"
	"fmt"
	"io"
	"net"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// Sentinel is the single byte marking end-of-message in raw framing mode.
const Sentinel byte = 0x00

// NewRawFrameCodec creates a frame codec terminating each envelope with the
// NUL sentinel byte. A body containing the sentinel itself is out of
// contract: the codec does not escape it, and the frame would be cut short
// on the receiving side. JSON envelope text never contains a NUL.
func NewRawFrameCodec() IFrameCodec {
	return &rawFrameCodec{}
}

// rawFrameCodec implements IFrameCodec for the raw framing mode
type rawFrameCodec struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see framing.IFrameCodec)
// --------------------------------------------------------------------------

func (c *rawFrameCodec) GetName() string {
	return "raw"
}

func (c *rawFrameCodec) WriteFrame(w io.Writer, body []byte) error {
	b := net.Buffers{body, {Sentinel}}
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("write raw frame: %w", err)
	}
	return nil
}

func (c *rawFrameCodec) ReadFrame(r io.Reader) ([]byte, error) {
	var (
		buf   []byte
		chunk = make([]byte, readChunkSize)
	)

	// Accumulate until the sentinel shows up. No length prefix exists in
	// this mode, so the sentinel is the only frame boundary.
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if i := bytes.IndexByte(buf, Sentinel); i >= 0 {
			return buf[:i], nil
		}
		if err != nil {
			if err == io.EOF {
				if len(buf) == 0 {
					return nil, common.ErrConnectionClosed
				}
				return nil, fmt.Errorf("%w: stream ended before sentinel", common.ErrIncompleteFrame)
			}
			return nil, fmt.Errorf("read raw frame: %w", err)
		}
		if len(buf) > MaxFrameSize {
			return nil, fmt.Errorf("%w: frame exceeds %d bytes", common.ErrFrameTooLarge, MaxFrameSize)
		}
	}
}
