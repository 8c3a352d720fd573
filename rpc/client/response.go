package client

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ucall-rpc/ucall-go/rpc/common"
)

// Result wraps a decoded response envelope. The raw envelope is always
// accessible; the convenience accessors fail when the envelope carries an
// error field instead of a result.
type Result struct {
	resp *common.Response
}

// Raw returns the decoded response envelope as received.
func (r *Result) Raw() *common.Response {
	return r.resp
}

// Err returns the envelope's error field as a *common.RemoteError, or nil
// when the call succeeded.
func (r *Result) Err() error {
	if r.resp.HasError() {
		return &common.RemoteError{Data: r.resp.Error}
	}
	return nil
}

// JSON returns the result field decoded into its natural Go value
// (bool/float64/string/map/slice/nil). It fails with the remote error when
// the envelope carries one.
func (r *Result) JSON() (any, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(r.resp.Result, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEnvelope, err)
	}
	return v, nil
}

// Unmarshal decodes the result field into v. It fails with the remote
// error when the envelope carries one.
func (r *Result) Unmarshal(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	return json.Unmarshal(r.resp.Result, v)
}

// Bytes decodes a binary-blob result: the result field must be a base64
// string, the packed form produced for []byte values. Further decoding
// (arrays, images) is the caller's concern.
func (r *Result) Bytes() ([]byte, error) {
	var s string
	if err := r.Unmarshal(&s); err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(s)
}
