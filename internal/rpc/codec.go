package rpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype the gateway and the stub services agree on.
// Clients select it with grpc.CallContentSubtype(rpc.Name); servers resolve
// it from the registry populated by this package's init.
const Name = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec carries the service messages as JSON frames. The contract
// messages in this package are plain structs with json tags, so no generated
// protobuf code is required on either side of the channel.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return Name
}
