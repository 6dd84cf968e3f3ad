// Package props maps configuration structs to flat, ordered property collections
// and back, protecting sensitive values on the way out.
//
// A struct declares which of its fields are injectable through struct tags.
// The mapper exports those fields into a Collection of key/value entries and
// imports a Collection back onto another instance of the same type, coercing
// text into the declared field types.
//
// # Tag Syntax
//
//	inject:"{name}"                - Field is injectable under {name}
//	inject.group:"{group}"         - Field belongs to a group of parallel lists
//	inject.sensitive:"true"        - Value is obfuscated on export
//	inject.sensitive:"{algorithm}" - Value is protected by the named secret codec
//	inject.mask:"{type}"           - Value is masked when rendered
//
// # Basic Usage
//
//	type KafkaStep struct {
//	    Topics   []string `inject:"TOPICS" inject.group:"topics"`
//	    Batch    int      `inject:"BATCH_SIZE"`
//	    Password string   `inject:"PASSWORD" inject.sensitive:"true"`
//	}
//
//	mapper, _ := props.NewMapper[KafkaStep]()
//
//	// Export (obfuscates Password)
//	entries, _ := mapper.Export(ctx, &step)
//
//	// Safe for logs: sensitive values are redacted
//	fmt.Println(entries)
//
//	// Import onto another instance (recovers Password)
//	var restored KafkaStep
//	_ = mapper.Import(ctx, entries, &restored)
//
// # Shapes
//
// Injectable fields must be a string, an integer, a bool, or a slice of one of
// those. Any other shape fails at scan time with ErrUnsupportedShape.
//
// # Secret Codecs
//
// Sensitive values pass through a SecretCodec selected by the tag value:
//
//   - obfuscate - Obfuscator(), deterministic, keyless (default for "true")
//   - aes       - Sealed over AES(key), AES-GCM
//   - rsa       - Sealed over RSA(pub, priv), RSA-OAEP
//   - envelope  - Sealed over Envelope(masterKey), per-token data keys
//   - xchacha   - Sealed over XChaCha(key), XChaCha20-Poly1305
//
// Only the obfuscator is registered by default. Others are configured with
// SetSecretCodec. The obfuscator protects values from casual display; it is
// not encryption.
//
// # Override Interface
//
// Types can declare their members without struct tags by implementing
// Describer.
//
// # Codec Providers
//
// Collections are turned into bytes by codec subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - toml - TOML encoding (application/toml)
package props

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// TextValidator is implemented by codecs whose wire format cannot carry every
// string. Marshal checks each entry's key, group and value with ValidateText
// and fails instead of emitting altered text. Errors must not quote the text.
type TextValidator interface {
	ValidateText(s string) error
}
