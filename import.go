package props

import (
	"fmt"
	"reflect"
	"strings"
)

// importConfig carries the mapper settings an import needs.
type importConfig struct {
	secrets      map[SecretAlgo]SecretCodec
	variables    map[string]string
	marker       string
	strictGroups bool
}

// stagedField is a fully decoded and coerced field value awaiting assignment.
type stagedField struct {
	member Member
	value  reflect.Value
}

// importValue applies c onto rv. Every member is decoded, coerced, and
// validated before any field is written, so rv is untouched on error.
func importValue(c Collection, rv reflect.Value, s Schema, cfg importConfig) error {
	byKey := make(map[string][]Entry, len(c))
	for _, e := range c {
		byKey[e.Key] = append(byKey[e.Key], e)
	}

	staged := make([]stagedField, 0, len(s.members))

	for _, m := range s.members {
		entries, ok := byKey[m.Name]
		if !ok {
			continue
		}
		field, err := rv.FieldByIndexErr(m.index)
		if err != nil {
			continue
		}

		if m.List {
			ordered, err := orderEntries(m, entries)
			if err != nil {
				return err
			}
			list := reflect.MakeSlice(field.Type(), len(ordered), len(ordered))
			for i, e := range ordered {
				v, err := cfg.value(m, e, field.Type().Elem())
				if err != nil {
					return err
				}
				list.Index(i).Set(v)
			}
			staged = append(staged, stagedField{member: m, value: list})
			continue
		}

		if len(entries) != 1 {
			return &MalformedGroupError{Key: m.Name, Group: m.Group,
				Reason: fmt.Sprintf("scalar member has %d entries", len(entries))}
		}
		if entries[0].Index != nil {
			return &MalformedGroupError{Key: m.Name, Group: m.Group,
				Reason: fmt.Sprintf("scalar member carries index %d", *entries[0].Index)}
		}
		v, err := cfg.value(m, entries[0], field.Type())
		if err != nil {
			return err
		}
		staged = append(staged, stagedField{member: m, value: v})
	}

	if cfg.strictGroups {
		if err := checkGroupLengths(staged); err != nil {
			return err
		}
	}

	for _, sf := range staged {
		rv.FieldByIndex(sf.member.index).Set(sf.value)
	}
	return nil
}

// value decodes, substitutes, and coerces one entry. Sensitive text is
// never substituted.
func (cfg importConfig) value(m Member, e Entry, typ reflect.Type) (reflect.Value, error) {
	text := e.Value
	if m.Sensitive {
		codec, ok := cfg.secrets[m.Secret]
		if !ok {
			return reflect.Value{}, newConfigError(ErrMissingSecret, string(m.Secret), m.Name)
		}
		plaintext, err := codec.Decode(text)
		if err != nil {
			return reflect.Value{}, newTransformError(ErrDecode, "decode", e.label(), err)
		}
		text = plaintext
	} else {
		text = substitute(text, cfg.variables)
	}

	v, err := parseValue(text, m, typ)
	if err != nil {
		shown := text
		if m.Sensitive {
			shown = cfg.marker
		}
		return reflect.Value{}, &CoercionError{
			Key:   m.Name,
			Index: e.Index,
			Kind:  m.Kind,
			Text:  shown,
			Cause: err,
		}
	}
	return v, nil
}

// orderEntries places list entries by index. The indices must be exactly
// 0..len(entries)-1 in any order.
func orderEntries(m Member, entries []Entry) ([]Entry, error) {
	ordered := make([]Entry, len(entries))
	filled := make([]bool, len(entries))

	for _, e := range entries {
		i, ok := e.Position()
		switch {
		case !ok:
			return nil, &MalformedGroupError{Key: m.Name, Group: m.Group, Reason: "list entry without index"}
		case i < 0 || i >= len(entries):
			return nil, &MalformedGroupError{Key: m.Name, Group: m.Group,
				Reason: fmt.Sprintf("index %d breaks contiguous range 0..%d", i, len(entries)-1)}
		case filled[i]:
			return nil, &MalformedGroupError{Key: m.Name, Group: m.Group,
				Reason: fmt.Sprintf("duplicate index %d", i)}
		}
		ordered[i] = e
		filled[i] = true
	}

	return ordered, nil
}

// checkGroupLengths rejects grouped lists of unequal length.
func checkGroupLengths(staged []stagedField) error {
	first := make(map[string]stagedField)
	for _, sf := range staged {
		m := sf.member
		if !m.List || m.Group == "" {
			continue
		}
		ref, ok := first[m.Group]
		if !ok {
			first[m.Group] = sf
			continue
		}
		if ref.value.Len() != sf.value.Len() {
			return &MalformedGroupError{Group: m.Group,
				Reason: fmt.Sprintf("%s has %d values, %s has %d",
					ref.member.Name, ref.value.Len(), m.Name, sf.value.Len())}
		}
	}
	return nil
}

// substitute replaces ${NAME} references with vars[NAME]. Unknown names and
// unterminated references are kept verbatim.
func substitute(text string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(text, "${") {
		return text
	}

	var b strings.Builder
	for {
		start := strings.Index(text, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(text[start+2:], '}')
		if end < 0 {
			break
		}
		ref := text[start : start+3+end]
		b.WriteString(text[:start])
		if val, ok := vars[ref[2:len(ref)-1]]; ok {
			b.WriteString(val)
		} else {
			b.WriteString(ref)
		}
		text = text[start+len(ref):]
	}
	b.WriteString(text)
	return b.String()
}
