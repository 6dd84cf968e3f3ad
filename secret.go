package props

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedToken indicates a token carries a codec prefix but its body
// cannot be decoded.
var ErrMalformedToken = errors.New("malformed token")

// SecretCodec is a reversible transform for sensitive values.
//
// Decode(Encode(s)) must return s for every s, including the empty string.
// Tokens carry a prefix that sets them apart from plausible plaintext;
// Decode returns text without that prefix unchanged, so hand-edited
// collections may hold plaintext for sensitive keys.
type SecretCodec interface {
	// Encode turns plaintext into an opaque token.
	Encode(plaintext string) (string, error)

	// Decode recovers the plaintext of a token.
	Decode(token string) (string, error)
}

// ObfuscatedPrefix marks tokens produced by Obfuscator. The prefix is
// constant, so a plaintext that itself starts with "Encrypted" shares that
// text with its token; only the hex body depends on the plaintext.
const ObfuscatedPrefix = "Encrypted "

// obfuscationSeed feeds the obfuscator key stream. Changing it breaks every
// previously exported token.
const obfuscationSeed = "0933910847463829827159347601486730416058"

type obfuscator struct{}

// Obfuscator returns the default keyless SecretCodec.
//
// Values are XORed with a fixed SHA-256 key stream and hex encoded behind
// ObfuscatedPrefix. Output is deterministic. This keeps secrets out of
// displays and logs; it is not encryption and offers no protection against
// anyone holding this package.
func Obfuscator() SecretCodec {
	return obfuscator{}
}

func (obfuscator) Encode(plaintext string) (string, error) {
	return ObfuscatedPrefix + hex.EncodeToString(xorStream([]byte(plaintext))), nil
}

func (obfuscator) Decode(token string) (string, error) {
	body, ok := strings.CutPrefix(token, ObfuscatedPrefix)
	if !ok {
		return token, nil
	}
	raw, err := hex.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return string(xorStream(raw)), nil
}

// xorStream XORs data with blocks of SHA-256(seed || counter).
func xorStream(data []byte) []byte {
	out := make([]byte, len(data))
	var block [sha256.Size]byte
	var input [len(obfuscationSeed) + 8]byte
	copy(input[:], obfuscationSeed)

	for i := range data {
		if i%sha256.Size == 0 {
			binary.BigEndian.PutUint64(input[len(obfuscationSeed):], uint64(i/sha256.Size)) // #nosec G115 -- i is non-negative
			block = sha256.Sum256(input[:])
		}
		out[i] = data[i] ^ block[i%sha256.Size]
	}
	return out
}

type sealedCodec struct {
	prefix string
	enc    Encryptor
}

// Sealed adapts an Encryptor into a SecretCodec. Tokens are
// "{algo}:" followed by the standard base64 ciphertext.
func Sealed(algo SecretAlgo, enc Encryptor) SecretCodec {
	return &sealedCodec{prefix: string(algo) + ":", enc: enc}
}

func (c *sealedCodec) Encode(plaintext string) (string, error) {
	ciphertext, err := c.enc.Encrypt([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return c.prefix + base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (c *sealedCodec) Decode(token string) (string, error) {
	body, ok := strings.CutPrefix(token, c.prefix)
	if !ok {
		return token, nil
	}
	ciphertext, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	plaintext, err := c.enc.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
