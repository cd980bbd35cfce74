package serializer

import (
	"encoding/base64"

	"github.com/vmihailenco/msgpack/v5"
)

type msgpackCodec struct{}

// MessagePack returns a Serializer that encodes values with MessagePack and
// stores the binary payload as standard base64 text.
func MessagePack() Serializer {
	return &textSerializer{format: FormatMessagePack, codec: msgpackCodec{}}
}

func (msgpackCodec) marshal(v any) (string, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func (msgpackCodec) unmarshal(text string, ptr any) error {
	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(b, ptr)
}
