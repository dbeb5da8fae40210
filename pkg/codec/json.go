package codec

import (
	"encoding/json"

	"github.com/appnet-org/declbench/pkg/payload"
)

// JSONCodec writes the bare JSON scalar.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(v payload.Value) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte) (payload.Value, error) {
	var v payload.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return payload.Value{}, err
	}
	return v, nil
}
