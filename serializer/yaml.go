package serializer

import (
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

// YAML returns a Serializer backed by gopkg.in/yaml.v3. Documents are written
// without the trailing newline.
func YAML() Serializer {
	return &textSerializer{format: FormatYAML, codec: yamlCodec{}}
}

func (yamlCodec) marshal(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func (yamlCodec) unmarshal(text string, ptr any) error {
	return yaml.Unmarshal([]byte(text), ptr)
}
