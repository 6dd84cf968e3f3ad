package props

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

var errNotBoolean = errors.New("expected true or false")

// formatValue renders a scalar field or list element as entry text.
func formatValue(v reflect.Value, kind Kind) string {
	switch kind {
	case KindBoolean:
		return strconv.FormatBool(v.Bool())
	case KindInteger:
		if v.CanInt() {
			return strconv.FormatInt(v.Int(), 10)
		}
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return v.String()
	}
}

// parseValue parses text into a new value of typ according to m's kind.
// The returned cause never contains text.
func parseValue(text string, m Member, typ reflect.Type) (reflect.Value, error) {
	out := reflect.New(typ).Elem()

	switch m.Kind {
	case KindString:
		out.SetString(text)

	case KindBoolean:
		switch {
		case strings.EqualFold(text, "true"):
			out.SetBool(true)
		case strings.EqualFold(text, "false"):
			out.SetBool(false)
		default:
			return reflect.Value{}, errNotBoolean
		}

	case KindInteger:
		if m.unsigned {
			n, err := strconv.ParseUint(text, 10, m.bits)
			if err != nil {
				return reflect.Value{}, numCause(err)
			}
			out.SetUint(n)
		} else {
			n, err := strconv.ParseInt(text, 10, m.bits)
			if err != nil {
				return reflect.Value{}, numCause(err)
			}
			out.SetInt(n)
		}
	}

	return out, nil
}

// numCause strips the input text from a strconv error.
func numCause(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
