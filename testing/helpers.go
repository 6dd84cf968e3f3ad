// Package testing provides fixtures and helpers for props tests.
package testing

import (
	"testing"

	"github.com/zoobzio/props"
)

// TestKey returns a valid 32-byte key for testing.
func TestKey(tb testing.TB) []byte {
	tb.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor(tb testing.TB) props.Encryptor {
	tb.Helper()
	enc, err := props.AES(TestKey(tb))
	if err != nil {
		tb.Fatalf("AES() error: %v", err)
	}
	return enc
}

// TestSecretCodec returns an AES-sealed secret codec for members tagged
// inject.sensitive:"aes".
func TestSecretCodec(tb testing.TB) props.SecretCodec {
	tb.Helper()
	return props.Sealed(props.SecretAES, TestEncryptor(tb))
}

// StepMeta is a processing-step configuration exercising every supported
// shape: grouped scalars, a sensitive scalar, plain and sensitive lists.
type StepMeta struct {
	Field1     string   `inject:"FIELD1" inject.group:"stuffGroup" inject.sensitive:"true"`
	Field2     int      `inject:"FIELD2" inject.group:"stuffGroup"`
	Password   string   `inject:"PassVerd" inject.sensitive:"true"`
	AList      []string `inject:"ALIST"`
	SecureList []string `inject:"SECURELIST" inject.sensitive:"true"`
	BList      []bool   `inject:"BOOLEANLIST"`
	IList      []int    `inject:"IntList"`
	Notes      string   // not injectable
}

// NewStepMeta returns a StepMeta holding its defaults.
func NewStepMeta() *StepMeta {
	return &StepMeta{
		Field1:   "default",
		Field2:   123,
		Password: "should.be.encrypted",
	}
}

// PopulatedStepMeta returns a StepMeta with every injectable member set.
func PopulatedStepMeta() *StepMeta {
	return &StepMeta{
		Field1:     "expectedString",
		Field2:     42,
		Password:   "p@ssword",
		AList:      []string{"one", "two", "three", "four"},
		SecureList: []string{"shadow", "substance"},
		BList:      []bool{true, false, false},
		IList:      []int{1, 4, 26},
		Notes:      "not exported",
	}
}

// SecretPhrases returns the sensitive values held by PopulatedStepMeta.
func SecretPhrases() []string {
	return []string{"expectedString", "p@ssword", "shadow", "substance"}
}

// ConnectionMeta is a step configuration with sealed secrets, masks, and
// the wider integer kinds.
type ConnectionMeta struct {
	Host     string   `inject:"HOST" inject.mask:"ip"`
	Port     uint16   `inject:"PORT"`
	Owner    string   `inject:"OWNER" inject.mask:"email"`
	User     string   `inject:"USER"`
	Token    string   `inject:"TOKEN" inject.sensitive:"aes"`
	Timeouts []int64  `inject:"TIMEOUTS" inject.group:"retry"`
	Backoff  []uint8  `inject:"BACKOFF" inject.group:"retry"`
	Replicas []string `inject:"REPLICAS" inject.sensitive:"aes"`
	TLS      bool     `inject:"TLS"`
}

// PopulatedConnectionMeta returns a ConnectionMeta with every member set.
func PopulatedConnectionMeta() *ConnectionMeta {
	return &ConnectionMeta{
		Host:     "192.168.10.24",
		Port:     5432,
		Owner:    "alice@example.com",
		User:     "etl",
		Token:    "tok-9f8e7d6c",
		Timeouts: []int64{-1, 0, 30000},
		Backoff:  []uint8{1, 2, 255},
		Replicas: []string{"replica-a", "replica-b"},
		TLS:      true,
	}
}
