package props

import (
	"reflect"
)

// exportValue walks rv against s and produces its collection.
// rv must be an addressable struct value of the scanned type; it is only read.
func exportValue(rv reflect.Value, s Schema, secrets map[SecretAlgo]SecretCodec) (Collection, error) {
	out := make(Collection, 0, len(s.members))

	for _, m := range s.members {
		field, err := rv.FieldByIndexErr(m.index)
		if err != nil {
			// Nil embedded pointer on the path: nothing to export.
			continue
		}

		if !m.List {
			e, err := exportEntry(m, formatValue(field, m.Kind), nil, secrets)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
			continue
		}

		for i := 0; i < field.Len(); i++ {
			e, err := exportEntry(m, formatValue(field.Index(i), m.Kind), indexPtr(i), secrets)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}

	return out, nil
}

func exportEntry(m Member, raw string, idx *int, secrets map[SecretAlgo]SecretCodec) (Entry, error) {
	e := Entry{
		Key:   m.Name,
		Group: m.Group,
		Index: idx,
		Value: raw,
	}
	if !m.Sensitive {
		return e, nil
	}

	codec, ok := secrets[m.Secret]
	if !ok {
		return Entry{}, newConfigError(ErrMissingSecret, string(m.Secret), m.Name)
	}
	token, err := codec.Encode(raw)
	if err != nil {
		return Entry{}, newTransformError(ErrEncode, "encode", e.label(), err)
	}
	e.Value = token
	e.Sensitive = true
	return e, nil
}
