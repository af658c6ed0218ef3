package liststore

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/tracker/internal/domain"
)

// JSONCodec encodes values as compact JSON.
type JSONCodec struct{}

// Marshal implements domain.Codec.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements domain.Codec.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// YAMLCodec encodes values as YAML documents.
type YAMLCodec struct{}

// Marshal implements domain.Codec.
func (YAMLCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal implements domain.Codec.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// CodecFor returns the codec for a config format name.
func CodecFor(format string) (domain.Codec, error) {
	switch format {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFormat, format)
}

var (
	_ domain.Codec = JSONCodec{}
	_ domain.Codec = YAMLCodec{}
)
