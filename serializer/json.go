package serializer

import (
	jsoniter "github.com/json-iterator/go"
)

type jsonCodec struct {
	api jsoniter.API
}

// JSON returns a Serializer backed by json-iterator, configured to behave
// like encoding/json (struct tags, Marshaler and TextMarshaler support).
func JSON() Serializer {
	return &textSerializer{
		format: FormatJSON,
		codec:  jsonCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary},
	}
}

func (c jsonCodec) marshal(v any) (string, error) {
	return c.api.MarshalToString(v)
}

func (c jsonCodec) unmarshal(text string, ptr any) error {
	return c.api.UnmarshalFromString(text, ptr)
}
