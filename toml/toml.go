// Package toml provides a TOML codec for props collections.
package toml

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/zoobzio/props"
)

// tomlCodec implements props.Codec for TOML.
type tomlCodec struct{}

// New returns a TOML codec.
func New() props.Codec {
	return &tomlCodec{}
}

// ContentType returns the MIME type for TOML.
func (c *tomlCodec) ContentType() string {
	return "application/toml"
}

// Marshal encodes v as TOML.
func (c *tomlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes TOML data into v.
func (c *tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
