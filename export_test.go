package props

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type failingCodec struct{}

func (failingCodec) Encode(string) (string, error) { return "", errors.New("boom") }
func (failingCodec) Decode(string) (string, error) { return "", errors.New("boom") }

func TestExport_Order(t *testing.T) {
	s, err := Scan[importMeta]()
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	src := importMeta{
		Name:   "orders",
		Port:   5432,
		Secret: "s3cret",
		Fields: []string{"id", "total"},
		Widths: []int{4, 8},
		Flags:  nil,
	}
	c, err := exportValue(reflect.ValueOf(&src).Elem(), s, map[SecretAlgo]SecretCodec{SecretObfuscate: Obfuscator()})
	if err != nil {
		t.Fatalf("exportValue() error: %v", err)
	}

	var labels []string
	for _, e := range c {
		labels = append(labels, e.label())
	}
	if got := strings.Join(labels, " "); got != "NAME PORT SECRET FIELDS[0] FIELDS[1] WIDTHS[0] WIDTHS[1]" {
		t.Errorf("labels = %q", got)
	}

	if c[3].Group != "cols" || c[5].Group != "cols" {
		t.Error("grouped entries should carry their group")
	}
	if c[2].Value == "s3cret" || !c[2].Sensitive {
		t.Errorf("SECRET entry = %+v", c[2])
	}
	if src.Secret != "s3cret" {
		t.Error("exportValue() mutated the source")
	}
}

func TestExport_EncodeError(t *testing.T) {
	s, err := Scan[importMeta]()
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	src := importMeta{Secret: "x"}
	_, err = exportValue(reflect.ValueOf(&src).Elem(), s, map[SecretAlgo]SecretCodec{SecretObfuscate: failingCodec{}})
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("exportValue() error = %v, want ErrEncode", err)
	}

	var te *TransformError
	if !errors.As(err, &te) || te.Field != "SECRET" {
		t.Errorf("TransformError = %+v", te)
	}
}

func TestExport_MissingSecretCodec(t *testing.T) {
	s, err := Scan[importMeta]()
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	src := importMeta{Secret: "x"}
	_, err = exportValue(reflect.ValueOf(&src).Elem(), s, map[SecretAlgo]SecretCodec{})
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("exportValue() error = %v, want ErrMissingSecret", err)
	}

	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "SECRET" {
		t.Errorf("ConfigError = %+v", ce)
	}
}

func TestExport_NilEmbeddedPointer(t *testing.T) {
	s, err := Scan[embeddedMeta]()
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	src := embeddedMeta{Name: "orders"}
	c, err := exportValue(reflect.ValueOf(&src).Elem(), s, nil)
	if err != nil {
		t.Fatalf("exportValue() error: %v", err)
	}
	if len(c) != 1 || c[0].Key != "NAME" {
		t.Errorf("collection = %+v, want only NAME", c)
	}

	src.Base = &Base{Owner: "ops"}
	c, _ = exportValue(reflect.ValueOf(&src).Elem(), s, nil)
	if got := strings.Join(c.Keys(), ","); got != "OWNER,NAME" {
		t.Errorf("Keys() = %q, want OWNER,NAME", got)
	}
}
