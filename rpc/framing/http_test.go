package framing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// chunkReader serves its data in fixed-size chunks, simulating partial
// reads of arbitrary sizes off a socket
type chunkReader struct {
	data      []byte
	chunkSize int
	pos       int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := r.chunkSize
	if n > len(p) {
		n = len(p)
	}
	if r.pos+n > len(r.data) {
		n = len(r.data) - r.pos
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}

// httpResponse builds a minimal server response frame around body
func httpResponse(body []byte) []byte {
	return []byte(fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Length: %d\r\nContent-Type: application/json\r\n\r\n%s", len(body), body))
}

// TestHTTPWriteFrame tests the exact wire bytes of an outgoing frame
func TestHTTPWriteFrame(t *testing.T) {
	codec := NewHTTPFrameCodec("10.1.2.3:8545", "go-ucall")
	body := []byte(`{"method":"ping","params":[],"id":1,"jsonrpc":"2.0"}`)

	var buf bytes.Buffer
	if err := codec.WriteFrame(&buf, body); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}

	frame := buf.String()
	header, gotBody, found := strings.Cut(frame, "\r\n\r\n")
	if !found {
		t.Fatalf("frame has no header/body separator: %q", frame)
	}
	if gotBody != string(body) {
		t.Errorf("body changed during framing: %q", gotBody)
	}

	lines := strings.Split(header, "\r\n")
	if lines[0] != "POST / HTTP/1.1" {
		t.Errorf("request line = %q", lines[0])
	}
	expectedHeaders := []string{
		"Host: 10.1.2.3:8545",
		"User-Agent: go-ucall",
		"Accept: */*",
		"Connection: keep-alive",
		fmt.Sprintf("Content-Length: %d", len(body)),
		"Content-Type: application/json",
	}
	for _, h := range expectedHeaders {
		if !strings.Contains(header, h) {
			t.Errorf("header block is missing %q:\n%s", h, header)
		}
	}
}

// TestHTTPContentLengthCountsBytes tests that multi-byte text is measured
// in bytes, not characters
func TestHTTPContentLengthCountsBytes(t *testing.T) {
	codec := NewHTTPFrameCodec("localhost:8545", "go-ucall")
	body := []byte(`{"method":"greet","params":["héllo wörld ünïcode"],"id":2,"jsonrpc":"2.0"}`)

	var buf bytes.Buffer
	if err := codec.WriteFrame(&buf, body); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}

	want := fmt.Sprintf("Content-Length: %d\r\n", len(body))
	if !bytes.Contains(buf.Bytes(), []byte(want)) {
		t.Errorf("frame does not declare the body byte length %d:\n%s", len(body), buf.String())
	}
	if len(body) == len([]rune(string(body))) {
		t.Fatal("test body must contain multi-byte text")
	}
}

// TestHTTPRoundTrip tests that framing then parsing recovers the original
// bytes for a range of body lengths
func TestHTTPRoundTrip(t *testing.T) {
	codec := NewHTTPFrameCodec("localhost:8545", "go-ucall")

	for _, size := range []int{0, 1, 2, 100, 4095, 4096, 4097, 65536} {
		body := bytes.Repeat([]byte{'x'}, size)
		parsed, err := codec.ReadFrame(bytes.NewReader(httpResponse(body)))
		if err != nil {
			t.Fatalf("size %d: failed to read frame: %v", size, err)
		}
		if !bytes.Equal(parsed, body) {
			t.Errorf("size %d: body doesn't match after round trip", size)
		}
	}
}

// TestHTTPSeparatorAcrossChunks tests reassembly when the header/body
// separator spans simulated partial reads
func TestHTTPSeparatorAcrossChunks(t *testing.T) {
	codec := NewHTTPFrameCodec("localhost:8545", "go-ucall")
	body := []byte(`{"result": 42}`)
	frame := httpResponse(body)

	for _, chunkSize := range []int{1, 2, 3, 7, len(frame)} {
		t.Run(fmt.Sprintf("chunk-%d", chunkSize), func(t *testing.T) {
			parsed, err := codec.ReadFrame(&chunkReader{data: frame, chunkSize: chunkSize})
			if err != nil {
				t.Fatalf("failed to read frame: %v", err)
			}
			if !bytes.Equal(parsed, body) {
				t.Errorf("body doesn't match: %q", parsed)
			}
		})
	}
}

// TestHTTPContentLengthWhitespace tests tolerance for whitespace around the
// header value
func TestHTTPContentLengthWhitespace(t *testing.T) {
	codec := NewHTTPFrameCodec("localhost:8545", "go-ucall")
	frame := []byte("HTTP/1.1 200 OK\r\nContent-Length:   4  \r\n\r\nbody")

	parsed, err := codec.ReadFrame(bytes.NewReader(frame))
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	if string(parsed) != "body" {
		t.Errorf("body = %q, expected %q", parsed, "body")
	}
}

// TestHTTPReadFaults tests the reader's error classification
func TestHTTPReadFaults(t *testing.T) {
	codec := NewHTTPFrameCodec("localhost:8545", "go-ucall")

	tests := map[string]struct {
		data []byte
		want error
	}{
		"EmptyStream":          {data: nil, want: common.ErrConnectionClosed},
		"HeaderNeverEnds":      {data: []byte("HTTP/1.1 200 OK\r\nContent-Length: 10\r\n"), want: common.ErrIncompleteFrame},
		"MissingContentLength": {data: []byte("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\nbody"), want: common.ErrIncompleteFrame},
		"BadContentLength":     {data: []byte("HTTP/1.1 200 OK\r\nContent-Length: many\r\n\r\nbody"), want: common.ErrIncompleteFrame},
		"TruncatedBody":        {data: []byte("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort"), want: common.ErrIncompleteFrame},
		"HugeDeclaredBody":     {data: []byte(fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Length: %d\r\n\r\n", MaxFrameSize+1)), want: common.ErrFrameTooLarge},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.ReadFrame(bytes.NewReader(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("ReadFrame() error = %v, expected %v", err, tc.want)
			}
		})
	}
}
