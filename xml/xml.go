// Package xml provides a XML codec for props collections.
package xml

import (
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/zoobzio/props"
)

// xmlCodec implements props.Codec for XML.
type xmlCodec struct{}

// New returns a XML codec.
func New() props.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// ValidateText rejects invalid UTF-8 and characters outside the XML 1.0 Char
// range, which encoding/xml replaces with U+FFFD.
func (c *xmlCodec) ValidateText(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", props.ErrUnencodable, i)
			}
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U at byte %d", props.ErrUnencodable, r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
