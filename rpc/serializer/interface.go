package serializer

import "github.com/ucall-rpc/ucall-go/rpc/common"

// IEnvelopeSerializer is the interface for all envelope serializers
type IEnvelopeSerializer interface {
	// SerializeRequest serializes a request envelope into a byte array
	// It returns the serialized byte array and an error if any
	SerializeRequest(req *common.Request) ([]byte, error)
	// DeserializeResponse deserializes a byte array into a response envelope
	// It takes a byte array and a pointer to a Response as parameters
	// It returns an error wrapping common.ErrMalformedEnvelope if the bytes
	// are not a well-formed envelope
	DeserializeResponse(b []byte, resp *common.Response) error
}
