package props

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
)

// fastArgon2 keeps Passphrase tests quick.
var fastArgon2 = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

func TestAES_RoundTrip(t *testing.T) {
	key := []byte("32-byte-key-for-aes-256-encrypt!")
	enc, err := AES(key)
	if err != nil {
		t.Fatalf("AES() error: %v", err)
	}

	plaintext := []byte("hello, world!")
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	if bytes.Equal(plaintext, ciphertext) {
		t.Error("ciphertext should differ from plaintext")
	}

	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}

	if !bytes.Equal(plaintext, decrypted) {
		t.Errorf("round-trip failed: got %q, want %q", decrypted, plaintext)
	}
}

func TestAES_InvalidKeySize(t *testing.T) {
	_, err := AES([]byte("short"))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("AES() error = %v, want ErrInvalidKeySize", err)
	}
}

func TestAES_Tampered(t *testing.T) {
	enc, _ := AES([]byte("32-byte-key-for-aes-256-encrypt!"))

	ciphertext, _ := enc.Encrypt([]byte("hello"))
	ciphertext[len(ciphertext)-1] ^= 0xFF

	if _, err := enc.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("Decrypt() error = %v, want ErrDecryptionFailed", err)
	}
	if _, err := enc.Decrypt([]byte{1, 2}); !errors.Is(err, ErrCiphertextShort) {
		t.Errorf("Decrypt(short) error = %v, want ErrCiphertextShort", err)
	}
}

func TestXChaCha_RoundTrip(t *testing.T) {
	enc, err := XChaCha([]byte("32-byte-key-for-xchacha-encrypt!"))
	if err != nil {
		t.Fatalf("XChaCha() error: %v", err)
	}

	plaintext := []byte("hello, world!")
	c1, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	c2, _ := enc.Encrypt(plaintext)
	if bytes.Equal(c1, c2) {
		t.Error("same plaintext should produce different ciphertext (random nonce)")
	}

	decrypted, err := enc.Decrypt(c1)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Errorf("round-trip failed: got %q, want %q", decrypted, plaintext)
	}
}

func TestXChaCha_InvalidKeySize(t *testing.T) {
	_, err := XChaCha(make([]byte, 16))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("XChaCha() error = %v, want ErrInvalidKeySize", err)
	}
}

func TestPassphrase_RoundTrip(t *testing.T) {
	salt := []byte("step-meta-salt")

	enc, err := PassphraseWithParams([]byte("correct horse"), salt, fastArgon2)
	if err != nil {
		t.Fatalf("PassphraseWithParams() error: %v", err)
	}

	ciphertext, err := enc.Encrypt([]byte("p@ssword"))
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	// Same passphrase and salt derive the same key.
	again, _ := PassphraseWithParams([]byte("correct horse"), salt, fastArgon2)
	decrypted, err := again.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if string(decrypted) != "p@ssword" {
		t.Errorf("round-trip failed: got %q", decrypted)
	}

	wrong, _ := PassphraseWithParams([]byte("battery staple"), salt, fastArgon2)
	if _, err := wrong.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("Decrypt() with wrong passphrase error = %v, want ErrDecryptionFailed", err)
	}
}

func TestPassphrase_ShortSalt(t *testing.T) {
	_, err := Passphrase([]byte("pass"), []byte("salt"))
	if !errors.Is(err, ErrInvalidSalt) {
		t.Errorf("Passphrase() error = %v, want ErrInvalidSalt", err)
	}
}

func TestDefaultArgon2Params(t *testing.T) {
	p := DefaultArgon2Params()
	if p.Time != 3 || p.Memory != 64*1024 || p.Threads != 4 || p.KeyLen != 32 {
		t.Errorf("DefaultArgon2Params() = %+v", p)
	}
}

func TestAES_DifferentNonce(t *testing.T) {
	key := []byte("32-byte-key-for-aes-256-encrypt!")
	enc, _ := AES(key)

	plaintext := []byte("hello")
	c1, _ := enc.Encrypt(plaintext)
	c2, _ := enc.Encrypt(plaintext)

	if bytes.Equal(c1, c2) {
		t.Error("same plaintext should produce different ciphertext (random nonce)")
	}
}

func TestRSA_RoundTrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}

	enc := RSA(&priv.PublicKey, priv)

	plaintext := []byte("hello, world!")
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}

	if !bytes.Equal(plaintext, decrypted) {
		t.Errorf("round-trip failed: got %q, want %q", decrypted, plaintext)
	}
}

func TestRSA_EncryptWithoutPublicKey(t *testing.T) {
	enc := RSA(nil, nil)
	_, err := enc.Encrypt([]byte("test"))
	if err == nil {
		t.Error("expected error when encrypting without public key")
	}
}

func TestRSA_DecryptWithoutPrivateKey(t *testing.T) {
	priv, _ := rsa.GenerateKey(rand.Reader, 2048)
	enc := RSA(&priv.PublicKey, nil)

	ciphertext, _ := enc.Encrypt([]byte("test"))
	_, err := enc.Decrypt(ciphertext)
	if err == nil {
		t.Error("expected error when decrypting without private key")
	}
}

func TestEnvelope_RoundTrip(t *testing.T) {
	masterKey := []byte("32-byte-master-key-for-envelope!")
	enc, err := Envelope(masterKey)
	if err != nil {
		t.Fatalf("Envelope() error: %v", err)
	}

	plaintext := []byte("hello, world!")
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}

	if !bytes.Equal(plaintext, decrypted) {
		t.Errorf("round-trip failed: got %q, want %q", decrypted, plaintext)
	}
}

func TestEnvelope_InvalidKeySize(t *testing.T) {
	_, err := Envelope([]byte("short"))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("Envelope() error = %v, want ErrInvalidKeySize", err)
	}
}

func TestEnvelope_Truncated(t *testing.T) {
	enc, _ := Envelope([]byte("32-byte-master-key-for-envelope!"))

	ciphertext, _ := enc.Encrypt([]byte("hello"))

	for _, n := range []int{0, 1, 10} {
		if _, err := enc.Decrypt(ciphertext[:n]); !errors.Is(err, ErrCiphertextShort) {
			t.Errorf("Decrypt(%d bytes) error = %v, want ErrCiphertextShort", n, err)
		}
	}
}

func TestEnvelope_WrongMasterKey(t *testing.T) {
	enc, _ := Envelope([]byte("32-byte-master-key-for-envelope!"))
	other, _ := Envelope([]byte("another-32-byte-master-key-here!"))

	ciphertext, _ := enc.Encrypt([]byte("hello"))
	if _, err := other.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("Decrypt() error = %v, want ErrDecryptionFailed", err)
	}
}

func TestEnvelope_DifferentDataKeys(t *testing.T) {
	masterKey := []byte("32-byte-master-key-for-envelope!")
	enc, _ := Envelope(masterKey)

	plaintext := []byte("hello")
	c1, _ := enc.Encrypt(plaintext)
	c2, _ := enc.Encrypt(plaintext)

	if bytes.Equal(c1, c2) {
		t.Error("same plaintext should produce different ciphertext (random data key)")
	}
}
