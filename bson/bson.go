// Package bson provides a BSON codec for props collections.
package bson

import (
	"github.com/zoobzio/props"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements props.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() props.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
