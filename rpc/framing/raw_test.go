package framing

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// TestRawWriteFrame tests that the codec appends exactly one sentinel byte
func TestRawWriteFrame(t *testing.T) {
	codec := NewRawFrameCodec()
	body := []byte(`{"method":"ping","params":[],"id":1,"jsonrpc":"2.0"}`)

	var buf bytes.Buffer
	if err := codec.WriteFrame(&buf, body); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}

	frame := buf.Bytes()
	if len(frame) != len(body)+1 {
		t.Fatalf("frame is %d bytes, expected body + 1 sentinel", len(frame))
	}
	if !bytes.Equal(frame[:len(body)], body) {
		t.Errorf("body changed during framing")
	}
	if frame[len(frame)-1] != Sentinel {
		t.Errorf("frame does not end with the sentinel byte: 0x%02x", frame[len(frame)-1])
	}
}

// TestRawRoundTrip tests frame then parse for a range of body lengths
func TestRawRoundTrip(t *testing.T) {
	codec := NewRawFrameCodec()

	for _, size := range []int{0, 1, 100, 4095, 4096, 4097, 65536} {
		body := bytes.Repeat([]byte{'x'}, size)

		var buf bytes.Buffer
		if err := codec.WriteFrame(&buf, body); err != nil {
			t.Fatalf("size %d: failed to write frame: %v", size, err)
		}

		parsed, err := codec.ReadFrame(&buf)
		if err != nil {
			t.Fatalf("size %d: failed to read frame: %v", size, err)
		}
		if !bytes.Equal(parsed, body) {
			t.Errorf("size %d: body doesn't match after round trip", size)
		}
	}
}

// TestRawSentinelAcrossChunks tests reassembly over simulated partial reads
func TestRawSentinelAcrossChunks(t *testing.T) {
	codec := NewRawFrameCodec()
	body := []byte(`{"result": "hello"}`)
	frame := append(append([]byte(nil), body...), Sentinel)

	for _, chunkSize := range []int{1, 2, 5, len(frame)} {
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

// TestRawReadFaults tests the reader's error classification
func TestRawReadFaults(t *testing.T) {
	codec := NewRawFrameCodec()

	tests := map[string]struct {
		data []byte
		want error
	}{
		"EmptyStream":    {data: nil, want: common.ErrConnectionClosed},
		"NoSentinel":     {data: []byte(`{"result": 42}`), want: common.ErrIncompleteFrame},
		"OversizedFrame": {data: bytes.Repeat([]byte{'x'}, MaxFrameSize+1), want: common.ErrFrameTooLarge},
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

// TestNewFrameCodec tests codec selection from the client config
func TestNewFrameCodec(t *testing.T) {
	tests := map[string]struct {
		framing common.FramingMode
		name    string
	}{
		"HTTP": {framing: common.FramingHTTP, name: "http"},
		"Raw":  {framing: common.FramingRaw, name: "raw"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			codec := NewFrameCodec(common.ClientConfig{
				Host:    "localhost",
				Port:    8545,
				Framing: tc.framing,
			})
			if codec.GetName() != tc.name {
				t.Errorf("GetName() = %q, expected %q", codec.GetName(), tc.name)
			}
		})
	}
}
