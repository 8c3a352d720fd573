package serializer

import (
	"testing"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// benchmarkRequests returns a set of requests for targeted benchmarking
func benchmarkRequests() map[string]*common.Request {
	return map[string]*common.Request{
		"NoParams": common.NewRequest("ping", nil, 1),
		"SmallPositional": common.NewRequest("echo", common.Positional(42), 2),
		"Named": common.NewRequest("login", common.Named(map[string]any{
			"user": "ada",
			"pass": "secret",
		}), 3),
		"MediumBlob": common.NewRequest("upload", common.Positional(make([]byte, 1024)), 4),
		"LargeBlob":  common.NewRequest("upload", common.Positional(make([]byte, 1024*16)), 5),
	}
}

func BenchmarkSerializeRequest(b *testing.B) {
	s := NewJSONSerializer()

	for name, req := range benchmarkRequests() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := s.SerializeRequest(req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDeserializeResponse(b *testing.B) {
	s := NewJSONSerializer()

	responses := map[string][]byte{
		"Scalar": []byte(`{"result": 42, "id": 7}`),
		"Object": []byte(`{"result": {"name": "ada", "roles": ["admin", "user"]}, "id": 8}`),
		"Error":  []byte(`{"error": {"code": -32601, "message": "no such method"}, "id": 9}`),
	}

	for name, data := range responses {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var resp common.Response
				if err := s.DeserializeResponse(data, &resp); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
