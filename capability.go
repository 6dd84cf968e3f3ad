package props

// Kind is the value kind of an injectable member.
type Kind uint8

const (
	// KindString is any string field.
	KindString Kind = iota + 1

	// KindInteger is any signed or unsigned integer field.
	KindInteger

	// KindBoolean is any bool field.
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// SecretAlgo names a secret codec.
// Use these constants in struct tags: `inject.sensitive:"aes"`
type SecretAlgo string

const (
	// SecretObfuscate uses the keyless obfuscator. Registered by default.
	SecretObfuscate SecretAlgo = "obfuscate"

	// SecretAES uses AES-GCM symmetric encryption.
	SecretAES SecretAlgo = "aes"

	// SecretRSA uses RSA-OAEP asymmetric encryption.
	SecretRSA SecretAlgo = "rsa"

	// SecretEnvelope uses envelope encryption with per-token data keys.
	SecretEnvelope SecretAlgo = "envelope"

	// SecretXChaCha uses XChaCha20-Poly1305.
	SecretXChaCha SecretAlgo = "xchacha"
)

// DefaultSecret is the algorithm used for `inject.sensitive:"true"`.
const DefaultSecret = SecretObfuscate

var validSecretAlgos = map[SecretAlgo]bool{
	SecretObfuscate: true,
	SecretAES:       true,
	SecretRSA:       true,
	SecretEnvelope:  true,
	SecretXChaCha:   true,
}

var validMaskTypes = map[MaskType]bool{
	MaskSSN:   true,
	MaskEmail: true,
	MaskPhone: true,
	MaskCard:  true,
	MaskIP:    true,
	MaskUUID:  true,
	MaskIBAN:  true,
	MaskName:  true,
}

// IsValidSecretAlgo returns true if the algorithm is a known secret algorithm.
func IsValidSecretAlgo(algo SecretAlgo) bool {
	return validSecretAlgos[algo]
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	return validMaskTypes[mt]
}
