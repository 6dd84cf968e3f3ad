// Package json provides a JSON codec for props collections.
package json

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/zoobzio/props"
)

// jsonCodec implements props.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() props.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ValidateText rejects invalid UTF-8, which encoding/json replaces with U+FFFD.
func (c *jsonCodec) ValidateText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", props.ErrUnencodable)
	}
	return nil
}
