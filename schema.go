package props

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/zoobzio/sentinel"
)

// Struct tags read by the scanner.
const (
	tagInject    = "inject"
	tagGroup     = "inject.group"
	tagSensitive = "inject.sensitive"
	tagMask      = "inject.mask"
)

func init() {
	sentinel.Tag(tagInject)
	sentinel.Tag(tagGroup)
	sentinel.Tag(tagSensitive)
	sentinel.Tag(tagMask)
}

// Member describes one injectable field.
type Member struct {
	Name      string     // Injection key
	Group     string     // Empty when the member has no group
	Sensitive bool       // Value is protected on export
	Secret    SecretAlgo // Secret algorithm, empty unless Sensitive
	Mask      MaskType   // Display mask, empty for none
	Kind      Kind       // Element kind
	List      bool       // True for slice fields
	Field     string     // Go field name

	index    []int // reflect.Value.FieldByIndex access path
	bits     int   // integer bit size
	unsigned bool  // integer is unsigned
}

// Schema is the ordered set of injectable members of a type.
// Schemas are immutable and shared; accessors return copies.
type Schema struct {
	typeName string
	members  []Member
}

// TypeName returns the name of the scanned type.
func (s Schema) TypeName() string {
	return s.typeName
}

// Len returns the number of injectable members.
func (s Schema) Len() int {
	return len(s.members)
}

// Members returns the members in declaration order.
func (s Schema) Members() []Member {
	out := make([]Member, len(s.members))
	copy(out, s.members)
	return out
}

// Lookup returns the member with the given injection key.
func (s Schema) Lookup(name string) (Member, bool) {
	for _, m := range s.members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// sensitiveCount returns how many members are sensitive.
func (s Schema) sensitiveCount() int {
	n := 0
	for _, m := range s.members {
		if m.Sensitive {
			n++
		}
	}
	return n
}

var (
	schemas   = make(map[reflect.Type]Schema)
	schemasMu sync.RWMutex
)

// Scan returns the schema of T, building and caching it on first use.
func Scan[T any]() (Schema, error) {
	rt := reflect.TypeFor[T]()
	return cachedSchema(rt, func() (Schema, error) {
		if rt.Kind() != reflect.Struct {
			return Schema{}, newSchemaError(ErrUnsupportedShape, rt.String(), "", "not a struct")
		}
		if d, ok := any(new(T)).(Describer); ok {
			return buildDeclaredSchema(rt, d.DescribeInjection())
		}
		return buildTaggedSchema(rt, sentinel.Scan[T]())
	})
}

// ScanType returns the schema of rt. It serves callers that only hold a
// reflect.Type; Scan is preferred when the type is known statically.
func ScanType(rt reflect.Type) (Schema, error) {
	return cachedSchema(rt, func() (Schema, error) {
		if rt == nil || rt.Kind() != reflect.Struct {
			return Schema{}, newSchemaError(ErrUnsupportedShape, fmt.Sprint(rt), "", "not a struct")
		}
		if d, ok := reflect.New(rt).Interface().(Describer); ok {
			return buildDeclaredSchema(rt, d.DescribeInjection())
		}
		return buildTaggedSchema(rt, lookupMetadata(rt))
	})
}

func cachedSchema(rt reflect.Type, build func() (Schema, error)) (Schema, error) {
	schemasMu.RLock()
	if s, ok := schemas[rt]; ok {
		schemasMu.RUnlock()
		return s, nil
	}
	schemasMu.RUnlock()

	schemasMu.Lock()
	defer schemasMu.Unlock()

	if s, ok := schemas[rt]; ok {
		return s, nil
	}

	s, err := build()
	if err != nil {
		return Schema{}, err
	}
	schemas[rt] = s
	return s, nil
}

// lookupMetadata returns sentinel metadata for rt, building the same shape
// from the struct tags when sentinel has not scanned the type. Sentinel's
// registry is keyed by generic scans, so types reached only through
// ScanType or embedding may not be present.
func lookupMetadata(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := make(map[string]string)
		for _, name := range []string{tagInject, tagGroup, tagSensitive, tagMask} {
			if val, ok := sf.Tag.Lookup(name); ok {
				tags[name] = val
			}
		}

		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}

	return spec
}

// buildTaggedSchema builds a schema from sentinel's field metadata in
// declaration order. Untagged embedded structs contribute their own tagged
// fields in place of the embedded field.
func buildTaggedSchema(rt reflect.Type, spec sentinel.Metadata) (Schema, error) {
	s := Schema{typeName: rt.Name()}
	seen := make(map[string]bool)

	if err := collectTagged(&s, seen, rt, spec, nil, map[reflect.Type]bool{rt: true}); err != nil {
		return Schema{}, err
	}

	return s, nil
}

func collectTagged(s *Schema, seen map[string]bool, rt reflect.Type, spec sentinel.Metadata, parentIndex []int, path map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		sf, ok := structField(rt, field)
		if !ok {
			continue
		}
		fullIndex := append(append([]int{}, parentIndex...), sf.Index...)

		name, tagged := field.Tags[tagInject]
		if !tagged {
			// sentinel drops empty tag values, so inject:"" is only visible
			// on the raw tag.
			_, tagged = sf.Tag.Lookup(tagInject)
		}

		if !tagged {
			if embedded := embeddedStruct(sf); embedded != nil && !path[embedded] {
				path[embedded] = true
				err := collectTagged(s, seen, embedded, lookupMetadata(embedded), fullIndex, path)
				delete(path, embedded)
				if err != nil {
					return err
				}
			}
			continue
		}
		if name == "" {
			name = field.Name
		}

		decl := Declaration{
			Field: field.Name,
			Name:  name,
			Group: field.Tags[tagGroup],
			Mask:  MaskType(field.Tags[tagMask]),
		}

		if val, ok := field.Tags[tagSensitive]; ok {
			sensitive, algo, valid := parseSensitive(val)
			if !valid {
				return newSchemaError(ErrInvalidTag, s.typeName, field.Name,
					fmt.Sprintf("invalid sensitivity %q", val))
			}
			decl.Sensitive = sensitive
			decl.Secret = algo
		}

		sf.Index = fullIndex
		m, err := buildMember(s.typeName, sf, decl)
		if err != nil {
			return err
		}
		if seen[m.Name] {
			return newSchemaError(ErrInvalidTag, s.typeName, field.Name,
				fmt.Sprintf("duplicate injection name %q", m.Name))
		}
		seen[m.Name] = true
		s.members = append(s.members, m)
	}

	return nil
}

// structField resolves sentinel field metadata against rt. The reflected
// type comes from the metadata when sentinel supplies one.
func structField(rt reflect.Type, field sentinel.FieldMetadata) (reflect.StructField, bool) {
	var sf reflect.StructField
	if len(field.Index) == 1 && field.Index[0] < rt.NumField() {
		sf = rt.Field(field.Index[0])
	} else {
		var ok bool
		if sf, ok = rt.FieldByName(field.Name); !ok || len(sf.Index) != 1 {
			return reflect.StructField{}, false
		}
	}
	if sf.Name != field.Name {
		return reflect.StructField{}, false
	}
	if field.ReflectType != nil {
		sf.Type = field.ReflectType
	}
	return sf, true
}

// embeddedStruct returns the struct type of an anonymous struct or
// struct pointer field, or nil.
func embeddedStruct(sf reflect.StructField) reflect.Type {
	if !sf.Anonymous {
		return nil
	}
	t := sf.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func buildDeclaredSchema(rt reflect.Type, decls []Declaration) (Schema, error) {
	s := Schema{typeName: rt.Name()}
	seen := make(map[string]bool)

	for _, decl := range decls {
		sf, ok := rt.FieldByName(decl.Field)
		if !ok {
			return Schema{}, newSchemaError(ErrInvalidTag, s.typeName, decl.Field, "no such field")
		}
		if decl.Name == "" {
			decl.Name = decl.Field
		}
		if decl.Sensitive && decl.Secret == "" {
			decl.Secret = DefaultSecret
		}
		if decl.Secret != "" && !IsValidSecretAlgo(decl.Secret) {
			return Schema{}, newSchemaError(ErrInvalidTag, s.typeName, decl.Field,
				fmt.Sprintf("invalid secret algorithm %q", decl.Secret))
		}
		if !decl.Sensitive {
			decl.Secret = ""
		}

		m, err := buildMember(s.typeName, sf, decl)
		if err != nil {
			return Schema{}, err
		}
		if seen[m.Name] {
			return Schema{}, newSchemaError(ErrInvalidTag, s.typeName, decl.Field,
				fmt.Sprintf("duplicate injection name %q", m.Name))
		}
		seen[m.Name] = true
		s.members = append(s.members, m)
	}

	return s, nil
}

func buildMember(typeName string, sf reflect.StructField, decl Declaration) (Member, error) {
	if !sf.IsExported() {
		return Member{}, newSchemaError(ErrInvalidTag, typeName, sf.Name, "field is not exported")
	}

	kind, list, elem, ok := classify(sf.Type)
	if !ok {
		return Member{}, newSchemaError(ErrUnsupportedShape, typeName, sf.Name,
			fmt.Sprintf("type %s is not a string, integer, bool, or slice of those", sf.Type))
	}

	if decl.Mask != "" {
		if !IsValidMaskType(decl.Mask) {
			return Member{}, newSchemaError(ErrInvalidTag, typeName, sf.Name,
				fmt.Sprintf("invalid mask type %q", decl.Mask))
		}
		if decl.Sensitive {
			return Member{}, newSchemaError(ErrInvalidTag, typeName, sf.Name,
				"sensitive members are always redacted and cannot be masked")
		}
	}

	m := Member{
		Name:      decl.Name,
		Group:     decl.Group,
		Sensitive: decl.Sensitive,
		Secret:    decl.Secret,
		Mask:      decl.Mask,
		Kind:      kind,
		List:      list,
		Field:     sf.Name,
		index:     append([]int{}, sf.Index...),
	}
	if kind == KindInteger {
		m.bits = elem.Bits()
		m.unsigned = isUnsigned(elem.Kind())
	}

	return m, nil
}

// parseSensitive reads an inject.sensitive tag value: a boolean literal or
// a secret algorithm name.
func parseSensitive(val string) (bool, SecretAlgo, bool) {
	if b, err := strconv.ParseBool(val); err == nil {
		if b {
			return true, DefaultSecret, true
		}
		return false, "", true
	}
	if IsValidSecretAlgo(SecretAlgo(val)) {
		return true, SecretAlgo(val), true
	}
	return false, "", false
}

// classify returns the member kind of rt, whether it is a list, and the
// element type.
func classify(rt reflect.Type) (Kind, bool, reflect.Type, bool) {
	if rt.Kind() == reflect.Slice {
		elem := rt.Elem()
		kind, ok := scalarKind(elem)
		return kind, true, elem, ok
	}
	kind, ok := scalarKind(rt)
	return kind, false, rt, ok
}

func scalarKind(rt reflect.Type) (Kind, bool) {
	switch rt.Kind() {
	case reflect.String:
		return KindString, true
	case reflect.Bool:
		return KindBoolean, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger, true
	default:
		return 0, false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
