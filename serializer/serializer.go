// Package serializer provides the structured text encodings used to store
// values that have no native column representation.
//
// Every Serializer offers two write modes:
//
//   - SerializeQuoted returns the full structured form (a JSON string value
//     keeps its surrounding double quotes).
//   - SerializeRaw returns textual content verbatim, without the wrapping the
//     structured form would add. Strings and encoding.TextMarshaler values are
//     written as-is, everything else is identical to SerializeQuoted.
//
// Enum names are written in raw mode so the dialect applies the only layer
// of SQL quoting.
package serializer

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/syssam/veloxconv"
)

// Supported formats.
const (
	FormatJSON        = "json"
	FormatYAML        = "yaml"
	FormatMessagePack = "msgpack"
)

// Serializer marshals arbitrary Go values to and from text. Implementations
// must be safe for concurrent use.
type Serializer interface {
	// Format returns the format name (e.g., "json").
	Format() string
	// SerializeRaw returns the unwrapped textual form of v.
	SerializeRaw(v any) (string, error)
	// SerializeQuoted returns the full structured form of v.
	SerializeQuoted(v any) (string, error)
	// Deserialize parses text into a new value of type t.
	Deserialize(text string, t reflect.Type) (any, error)
}

// New returns the serializer registered for the given format.
func New(format string) (Serializer, error) {
	switch format {
	case FormatJSON, "":
		return JSON(), nil
	case FormatYAML:
		return YAML(), nil
	case FormatMessagePack:
		return MessagePack(), nil
	default:
		return nil, fmt.Errorf("serializer: unknown format %q", format)
	}
}

// codec is the encoding-specific half of a Serializer.
type codec interface {
	marshal(v any) (string, error)
	unmarshal(text string, ptr any) error
}

// textSerializer implements Serializer on top of a codec.
type textSerializer struct {
	format string
	codec  codec
}

func (s *textSerializer) Format() string { return s.format }

func (s *textSerializer) SerializeRaw(v any) (string, error) {
	text, ok, err := rawText(v)
	if err != nil {
		return "", veloxconv.NewSerializationError(s.format, typeOf(v), err)
	}
	if ok {
		return text, nil
	}
	return s.SerializeQuoted(v)
}

func (s *textSerializer) SerializeQuoted(v any) (string, error) {
	text, err := s.codec.marshal(v)
	if err != nil {
		return "", veloxconv.NewSerializationError(s.format, typeOf(v), err)
	}
	return text, nil
}

func (s *textSerializer) Deserialize(text string, t reflect.Type) (any, error) {
	if t == nil {
		return nil, veloxconv.NewDeserializationError(s.format, "<nil>", text, fmt.Errorf("missing target type"))
	}
	ptr := reflect.New(t)
	if err := s.codec.unmarshal(text, ptr.Interface()); err != nil {
		return nil, veloxconv.NewDeserializationError(s.format, t.String(), text, err)
	}
	return ptr.Elem().Interface(), nil
}

// rawText reports the verbatim text of string-like values.
func rawText(v any) (string, bool, error) {
	switch v := v.(type) {
	case string:
		return v, true, nil
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true, nil
	}
	return "", false, nil
}

func typeOf(v any) string {
	return fmt.Sprintf("%T", v)
}
