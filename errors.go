package props

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedShape indicates an injectable field has a type outside
	// string, integer, bool, or a slice of those.
	ErrUnsupportedShape = errors.New("unsupported member shape")

	// ErrInvalidTag indicates a struct tag or declaration has an invalid value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrCoercion indicates a value's text could not be parsed into the member kind.
	ErrCoercion = errors.New("coercion failed")

	// ErrMalformedGroup indicates list entries with missing, duplicate, or
	// non-contiguous indices, or grouped lists of unequal length.
	ErrMalformedGroup = errors.New("malformed group")

	// ErrMissingSecret indicates a required secret codec was not registered.
	ErrMissingSecret = errors.New("missing secret codec")

	// ErrMissingMasker indicates a required masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrMissingCodec indicates Marshal or Unmarshal was called without a codec.
	ErrMissingCodec = errors.New("missing codec")

	// ErrEncode indicates a secret codec failed to encode a value.
	ErrEncode = errors.New("encode failed")

	// ErrDecode indicates a secret codec failed to decode a value.
	ErrDecode = errors.New("decode failed")

	// ErrUnencodable indicates text that a codec's wire format would alter.
	ErrUnencodable = errors.New("text not representable by codec")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// SchemaError reports a problem found while scanning a type.
type SchemaError struct {
	Err    error  // ErrUnsupportedShape or ErrInvalidTag
	Type   string // Declaring type name
	Field  string // Go field name, empty for type-level problems
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s.%s: %s", e.Err.Error(), e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Err.Error(), e.Type, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// CoercionError reports entry text that does not parse into the member kind.
// Text holds the redaction marker instead of the value for sensitive members.
type CoercionError struct {
	Key   string
	Index *int
	Kind  Kind
	Text  string
	Cause error
}

func (e *CoercionError) Error() string {
	key := e.Key
	if e.Index != nil {
		key = fmt.Sprintf("%s[%d]", e.Key, *e.Index)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: key %s: %q is not a valid %s: %v", ErrCoercion.Error(), key, e.Text, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: key %s: %q is not a valid %s", ErrCoercion.Error(), key, e.Text, e.Kind)
}

func (e *CoercionError) Unwrap() error {
	return ErrCoercion
}

// MalformedGroupError reports list entries that cannot be rebuilt into a list.
type MalformedGroupError struct {
	Key    string // Member key, empty for group-level problems
	Group  string
	Reason string
}

func (e *MalformedGroupError) Error() string {
	switch {
	case e.Key != "" && e.Group != "":
		return fmt.Sprintf("%s: key %s (group %s): %s", ErrMalformedGroup.Error(), e.Key, e.Group, e.Reason)
	case e.Key != "":
		return fmt.Sprintf("%s: key %s: %s", ErrMalformedGroup.Error(), e.Key, e.Reason)
	default:
		return fmt.Sprintf("%s: group %s: %s", ErrMalformedGroup.Error(), e.Group, e.Reason)
	}
}

func (e *MalformedGroupError) Unwrap() error {
	return ErrMalformedGroup
}

// ConfigError represents a mapper configuration error.
type ConfigError struct {
	Err       error  // ErrMissingSecret, ErrMissingMasker, ErrMissingCodec
	Field     string // Member key that triggered the error
	Algorithm string // Algorithm or type that was missing
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q (field %s)", e.Err.Error(), e.Algorithm, e.Field)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents a secret codec failure on one member value.
type TransformError struct {
	Err       error  // ErrEncode or ErrDecode
	Field     string // Member key, with index for list elements
	Operation string // encode or decode
	Cause     error
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // ErrMarshal or ErrUnmarshal
	Cause error
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newSchemaError(sentinel error, typeName, field, reason string) error {
	return &SchemaError{
		Err:    sentinel,
		Type:   typeName,
		Field:  field,
		Reason: reason,
	}
}

func newConfigError(sentinel error, algorithm, field string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Field:     field,
	}
}

func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
