package framing

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// headerSeparator terminates the header block of an HTTP-framed message.
var headerSeparator = []byte("\r\n\r\n")

// contentLengthPrefix is matched case-sensitively against header lines, the
// way the servers speaking this protocol emit it.
var contentLengthPrefix = []byte("Content-Length:")

// NewHTTPFrameCodec creates a frame codec emitting an HTTP/1.1 request line
// and a fixed header block around each envelope. The header template is
// computed once here, not per call; only Content-Length varies.
func NewHTTPFrameCodec(hostPort string, userAgent string) IFrameCodec {
	return &httpFrameCodec{
		template: fmt.Sprintf(
			"POST / HTTP/1.1\r\nHost: %s\r\nUser-Agent: %s\r\nAccept: */*\r\nConnection: keep-alive\r\nContent-Length: %%d\r\nContent-Type: application/json\r\n\r\n",
			hostPort, userAgent),
	}
}

// httpFrameCodec implements IFrameCodec for the HTTP framing mode
type httpFrameCodec struct {
	// template is the full header block with a %d placeholder for the
	// Content-Length value
	template string
}

// --------------------------------------------------------------------------
// Interface Methods (docu see framing.IFrameCodec)
// --------------------------------------------------------------------------

func (c *httpFrameCodec) GetName() string {
	return "http"
}

func (c *httpFrameCodec) WriteFrame(w io.Writer, body []byte) error {
	// Content-Length counts bytes, not characters. len(body) is already a
	// byte count, so multi-byte text needs no special handling here.
	header := []byte(fmt.Sprintf(c.template, len(body)))

	b := net.Buffers{header, body}
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("write http frame: %w", err)
	}
	return nil
}

func (c *httpFrameCodec) ReadFrame(r io.Reader) ([]byte, error) {
	var (
		buf   []byte
		chunk = make([]byte, readChunkSize)
	)

	// Accumulate until the header/body separator appears. Reads arrive in
	// arbitrary chunk sizes, so the separator may span read boundaries;
	// searching the whole buffer after every read handles that.
	for !bytes.Contains(buf, headerSeparator) {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if bytes.Contains(buf, headerSeparator) {
			break
		}
		if err != nil {
			if err == io.EOF {
				if len(buf) == 0 {
					return nil, common.ErrConnectionClosed
				}
				return nil, fmt.Errorf("%w: stream ended inside header block", common.ErrIncompleteFrame)
			}
			return nil, fmt.Errorf("read http frame header: %w", err)
		}
		if len(buf) > MaxFrameSize {
			return nil, fmt.Errorf("%w: header block exceeds %d bytes", common.ErrFrameTooLarge, MaxFrameSize)
		}
	}

	// Split at the first separator. The read may have over-read into the
	// body; the initial fragment counts toward Content-Length.
	sep := bytes.Index(buf, headerSeparator)
	header := buf[:sep]
	body := append([]byte(nil), buf[sep+len(headerSeparator):]...)

	contentLen, err := parseContentLength(header)
	if err != nil {
		return nil, err
	}
	if contentLen > MaxFrameSize {
		return nil, fmt.Errorf("%w: declared body of %d bytes", common.ErrFrameTooLarge, contentLen)
	}

	// Continue until the collected body bytes equal Content-Length.
	for len(body) < contentLen {
		n, err := r.Read(chunk)
		body = append(body, chunk[:n]...)
		if len(body) >= contentLen {
			break
		}
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: got %d of %d body bytes", common.ErrIncompleteFrame, len(body), contentLen)
			}
			return nil, fmt.Errorf("read http frame body: %w", err)
		}
	}

	return body[:contentLen], nil
}

// parseContentLength scans the header block for the Content-Length line and
// parses its value, tolerating surrounding whitespace.
func parseContentLength(header []byte) (int, error) {
	for _, line := range bytes.Split(header, []byte("\r\n")) {
		if !bytes.HasPrefix(line, contentLengthPrefix) {
			continue
		}
		value := string(bytes.TrimSpace(line[len(contentLengthPrefix):]))
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: unparseable Content-Length %q", common.ErrIncompleteFrame, value)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: header block without Content-Length", common.ErrIncompleteFrame)
}
