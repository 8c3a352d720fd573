package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// NewJSONSerializer creates a new serializer producing the canonical
// JSON-RPC text form of the envelope
func NewJSONSerializer() IEnvelopeSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IEnvelopeSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IEnvelopeSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) SerializeRequest(req *common.Request) ([]byte, error) {
	return json.Marshal(req)
}

func (j jsonSerializerImpl) DeserializeResponse(b []byte, resp *common.Response) error {
	if err := json.Unmarshal(b, resp); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedEnvelope, err)
	}
	return nil
}
