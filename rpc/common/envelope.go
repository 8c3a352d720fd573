package common

import (
	"encoding/base64"
	"encoding/json"
)

// --------------------------------------------------------------------------
// Envelope Structures
// --------------------------------------------------------------------------

// ProtocolVersion is the version tag carried in every request envelope.
const ProtocolVersion = "2.0"

// MinCallID and MaxCallID bound the per-call correlation token.
// The server echoes the id back on the response; since a client never has
// more than one call in flight, no collision tracking is needed.
const (
	MinCallID = 1
	MaxCallID = 1 << 16
)

// Request is the envelope for a single outgoing call. All four fields are
// always serialized, in deterministic presence, independent of transport
// framing.
type Request struct {
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      uint32 `json:"id"`
	JSONRPC string `json:"jsonrpc"`
}

// Response is the envelope for a single incoming reply. A well-formed
// response carries either Result or Error, never both. Both are kept as raw
// JSON so the transport stays agnostic of the payload shape.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
	ID     uint32          `json:"id,omitempty"`
}

// HasError reports whether the response carries an error field.
func (r *Response) HasError() bool {
	return len(r.Error) > 0
}

// --------------------------------------------------------------------------
// Parameter Variants
// --------------------------------------------------------------------------

// Params is either a positional sequence or a name-to-value mapping.
// The two variants are mutually exclusive per call.
type Params interface {
	pack() any
}

// Positional creates a positional parameter list. Values of type []byte are
// base64-packed into strings before serialization.
func Positional(values ...any) Params {
	return positionalParams(values)
}

// Named creates a keyword parameter mapping. Values of type []byte are
// base64-packed into strings before serialization.
func Named(values map[string]any) Params {
	return namedParams(values)
}

type positionalParams []any

func (p positionalParams) pack() any {
	packed := make([]any, len(p))
	for i, v := range p {
		packed[i] = packValue(v)
	}
	return packed
}

type namedParams map[string]any

func (p namedParams) pack() any {
	packed := make(map[string]any, len(p))
	for k, v := range p {
		packed[k] = packValue(v)
	}
	return packed
}

// packValue converts binary blobs into their transportable text form.
// Scalars pass through untouched; richer encodings (arrays, images) are the
// caller's concern and arrive here already packed as strings.
func packValue(v any) any {
	if b, ok := v.([]byte); ok {
		return base64.StdEncoding.EncodeToString(b)
	}
	return v
}

// --------------------------------------------------------------------------
// Envelope Factory Functions
// --------------------------------------------------------------------------

// NewRequest creates a request envelope for the given method, packed params
// and correlation id. A nil params produces an empty positional list so the
// params key is always present on the wire.
func NewRequest(method string, params Params, id uint32) *Request {
	if params == nil {
		params = Positional()
	}
	return &Request{
		Method:  method,
		Params:  params.pack(),
		ID:      id,
		JSONRPC: ProtocolVersion,
	}
}
