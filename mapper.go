package props

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"sync"
	"time"
)

// ErrNilTarget indicates Import or Unmarshal was given a nil target.
var ErrNilTarget = errors.New("nil import target")

// Mapper exports values of T to collections and imports collections back.
//
// Mappers are safe for concurrent use. Configuration methods may be called at
// any time; each change is validated again on the next operation. Import
// needs exclusive access to its target for the duration of the call.
type Mapper[T any] struct {
	schema Schema

	// Mutable configuration protected by mu
	mu        sync.RWMutex
	secrets   map[SecretAlgo]SecretCodec
	maskers   map[MaskType]Masker
	codec     Codec
	marker    string
	variables map[string]string
	strict    bool

	// Validation state, cleared by every configuration change
	validated   bool
	validateErr error
}

// NewMapper scans T and returns a Mapper for it.
//
// The mapper starts with the obfuscator registered for SecretObfuscate and
// all builtin maskers. Other secret codecs must be registered with
// SetSecretCodec before exporting members that name them.
func NewMapper[T any]() (*Mapper[T], error) {
	s, err := Scan[T]()
	if err != nil {
		return nil, err
	}

	m := &Mapper[T]{
		schema:  s,
		secrets: map[SecretAlgo]SecretCodec{SecretObfuscate: Obfuscator()},
		maskers: builtinMaskers(),
		marker:  DefaultMarker,
	}

	emitMapperCreated(context.Background(), s.typeName, s.Len())
	return m, nil
}

// SetSecretCodec registers a secret codec for the given algorithm. A nil
// codec unregisters it. Returns the mapper for chaining.
func (m *Mapper[T]) SetSecretCodec(algo SecretAlgo, codec SecretCodec) *Mapper[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if codec == nil {
		delete(m.secrets, algo)
	} else {
		m.secrets[algo] = codec
	}
	m.validated = false
	return m
}

// SetMasker registers a masker for the given type, replacing the builtin
// one. A nil masker unregisters it. Returns the mapper for chaining.
func (m *Mapper[T]) SetMasker(mt MaskType, masker Masker) *Mapper[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if masker == nil {
		delete(m.maskers, mt)
	} else {
		m.maskers[mt] = masker
	}
	m.validated = false
	return m
}

// SetCodec sets the wire codec used by Marshal and Unmarshal.
// Returns the mapper for chaining.
func (m *Mapper[T]) SetCodec(codec Codec) *Mapper[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codec = codec
	return m
}

// SetMarker replaces the redaction marker used by Render and coercion errors.
// An empty marker restores DefaultMarker.
func (m *Mapper[T]) SetMarker(marker string) *Mapper[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if marker == "" {
		marker = DefaultMarker
	}
	m.marker = marker
	return m
}

// SetVariables sets the values substituted for ${NAME} references in entry
// text during import. Sensitive members are not substituted, so secrets
// round-trip exactly. The map is copied.
func (m *Mapper[T]) SetVariables(vars map[string]string) *Mapper[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variables = maps.Clone(vars)
	return m
}

// SetStrictGroups makes Import reject grouped lists of unequal length.
func (m *Mapper[T]) SetStrictGroups(strict bool) *Mapper[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strict = strict
	return m
}

// Schema returns the scanned schema of T.
func (m *Mapper[T]) Schema() Schema {
	return m.schema
}

// Validate checks that every sensitive member's secret codec and every
// mask type is registered. It also runs automatically before each operation
// that follows a configuration change.
func (m *Mapper[T]) Validate() error {
	m.mu.RLock()
	if m.validated {
		err := m.validateErr
		m.mu.RUnlock()
		return err
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.validated {
		m.validateErr = m.validateCapabilities()
		m.validated = true
	}
	return m.validateErr
}

func (m *Mapper[T]) validateCapabilities() error {
	for _, member := range m.schema.members {
		if member.Sensitive {
			if _, ok := m.secrets[member.Secret]; !ok {
				return newConfigError(ErrMissingSecret, string(member.Secret), member.Name)
			}
		}
		if member.Mask != "" {
			if _, ok := m.maskers[member.Mask]; !ok {
				return newConfigError(ErrMissingMasker, string(member.Mask), member.Name)
			}
		}
	}
	return nil
}

// Export reads every injectable member of obj into a new collection.
// Sensitive values are replaced by secret codec tokens. obj is not modified.
// A nil obj exports an empty collection.
func (m *Mapper[T]) Export(ctx context.Context, obj *T) (out Collection, err error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitExportStart(ctx, m.schema.typeName)
	defer func() {
		emitExportComplete(ctx, m.schema.typeName, time.Since(start), len(out), countSensitive(out), err)
	}()

	if obj == nil {
		return Collection{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return exportValue(reflect.ValueOf(obj).Elem(), m.schema, m.secrets)
}

// Import writes the members found in c onto target, leaving members without
// entries untouched. On error target is not modified.
func (m *Mapper[T]) Import(ctx context.Context, c Collection, target *T) (err error) {
	if err := m.Validate(); err != nil {
		return err
	}

	start := time.Now()
	emitImportStart(ctx, m.schema.typeName)
	defer func() {
		emitImportComplete(ctx, m.schema.typeName, time.Since(start), len(c), err)
	}()

	if target == nil {
		return ErrNilTarget
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return importValue(c, reflect.ValueOf(target).Elem(), m.schema, m.importConfig())
}

// Marshal exports obj and encodes the collection with the configured codec.
func (m *Mapper[T]) Marshal(ctx context.Context, obj *T) (data []byte, err error) {
	codec, err := m.requireCodec()
	if err != nil {
		return nil, err
	}

	c, err := m.Export(ctx, obj)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	emitMarshalStart(ctx, codec.ContentType(), m.schema.typeName)
	defer func() {
		emitMarshalComplete(ctx, codec.ContentType(), m.schema.typeName, len(data), time.Since(start), err)
	}()

	if tv, ok := codec.(TextValidator); ok {
		if err := validateText(tv, c); err != nil {
			return nil, newCodecError(ErrMarshal, err)
		}
	}

	data, err = codec.Marshal(&document{Entries: c})
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

func validateText(tv TextValidator, c Collection) error {
	for _, e := range c {
		for _, text := range [...]string{e.Key, e.Group, e.Value} {
			if err := tv.ValidateText(text); err != nil {
				return fmt.Errorf("%s: %w", e.label(), err)
			}
		}
	}
	return nil
}

// Unmarshal decodes data with the configured codec and imports the
// collection onto target.
func (m *Mapper[T]) Unmarshal(ctx context.Context, data []byte, target *T) (err error) {
	codec, err := m.requireCodec()
	if err != nil {
		return err
	}

	doc, err := m.decode(ctx, codec, data)
	if err != nil {
		return err
	}
	return m.Import(ctx, doc.Entries, target)
}

func (m *Mapper[T]) decode(ctx context.Context, codec Codec, data []byte) (doc document, err error) {
	start := time.Now()
	emitUnmarshalStart(ctx, codec.ContentType(), m.schema.typeName)
	defer func() {
		emitUnmarshalComplete(ctx, codec.ContentType(), m.schema.typeName, len(data), time.Since(start), err)
	}()

	if err := codec.Unmarshal(data, &doc); err != nil {
		return document{}, newCodecError(ErrUnmarshal, err)
	}
	return doc, nil
}

// Render returns the display form of c with the mapper's marker, masking
// non-sensitive members that declare a mask type.
func (m *Mapper[T]) Render(c Collection) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	masks := make(map[string]Masker)
	for _, member := range m.schema.members {
		if member.Mask == "" || member.Sensitive {
			continue
		}
		if masker, ok := m.maskers[member.Mask]; ok {
			masks[member.Name] = masker
		}
	}

	return Render(c, WithMarker(m.marker), WithMasks(masks))
}

// Equal reports whether a and b hold equal values in every injectable
// member. Nil and empty lists are equal.
func (m *Mapper[T]) Equal(a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalValue(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem(), m.schema)
}

func (m *Mapper[T]) requireCodec() (Codec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.codec == nil {
		return nil, &ConfigError{Err: ErrMissingCodec}
	}
	return m.codec, nil
}

// importConfig snapshots the settings an import needs. Callers hold mu.
func (m *Mapper[T]) importConfig() importConfig {
	return importConfig{
		secrets:      m.secrets,
		variables:    m.variables,
		marker:       m.marker,
		strictGroups: m.strict,
	}
}

func equalValue(a, b reflect.Value, s Schema) bool {
	for _, member := range s.members {
		fa, errA := a.FieldByIndexErr(member.index)
		fb, errB := b.FieldByIndexErr(member.index)
		if errA != nil || errB != nil {
			if (errA == nil) != (errB == nil) {
				return false
			}
			continue
		}

		if !member.List {
			if !fa.Equal(fb) {
				return false
			}
			continue
		}

		if fa.Len() != fb.Len() {
			return false
		}
		for i := 0; i < fa.Len(); i++ {
			if !fa.Index(i).Equal(fb.Index(i)) {
				return false
			}
		}
	}
	return true
}
