package props

import (
	"net/netip"
	"strings"
	"unicode"
)

// MaskType represents a known data format with masking rules.
// Masks only apply when rendering non-sensitive members; sensitive members
// are always replaced by the redaction marker.
type MaskType string

const (
	MaskSSN   MaskType = "ssn"   // 123-45-6789 -> ***-**-6789
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskPhone MaskType = "phone" // (555) 123-4567 -> (***) ***-4567
	MaskCard  MaskType = "card"  // 4111111111111111 -> ************1111
	MaskIP    MaskType = "ip"    // 192.168.1.100 -> 192.168.xxx.xxx
	MaskUUID  MaskType = "uuid"  // 550e8400-e29b-41d4-a716-446655440000 -> 550e8400-****-****-****-************
	MaskIBAN  MaskType = "iban"  // GB82WEST12345698765432 -> GB82**************5432
	MaskName  MaskType = "name"  // John Smith -> J*** S****
)

// Masker applies content-aware masking.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(value string) string

// Mask calls f(value).
func (f MaskerFunc) Mask(value string) string {
	return f(value)
}

// SSNMasker keeps the last 4 digits of a Social Security Number.
func SSNMasker() Masker {
	return MaskerFunc(func(value string) string {
		last4, ok := lastDigits(value, 4)
		if !ok {
			return stars(value)
		}
		return "***-**-" + last4
	})
}

// EmailMasker keeps the first character of the local part and the domain.
func EmailMasker() Masker {
	return MaskerFunc(func(value string) string {
		at := strings.LastIndex(value, "@")
		if at < 1 {
			return stars(value)
		}
		return value[:1] + "***" + value[at:]
	})
}

// PhoneMasker keeps the last 4 digits of a phone number.
func PhoneMasker() Masker {
	return MaskerFunc(func(value string) string {
		last4, ok := lastDigits(value, 4)
		if !ok {
			return stars(value)
		}
		digits := len(extractDigits(value))
		switch {
		case strings.HasPrefix(value, "(") && digits >= 10:
			return "(***) ***-" + last4
		case digits >= 10:
			return "***-***-" + last4
		default:
			return "***-" + last4
		}
	})
}

// CardMasker keeps the last 4 digits of a card number, preserving space or
// dash grouping.
func CardMasker() Masker {
	return MaskerFunc(func(value string) string {
		last4, ok := lastDigits(value, 4)
		if !ok {
			return stars(value)
		}
		hidden := len(extractDigits(value)) - 4

		var sep string
		switch {
		case strings.Contains(value, " "):
			sep = " "
		case strings.Contains(value, "-"):
			sep = "-"
		default:
			return strings.Repeat("*", hidden) + last4
		}

		groups := make([]string, (hidden+3)/4, (hidden+3)/4+1)
		for i := range groups {
			groups[i] = "****"
		}
		return strings.Join(append(groups, last4), sep)
	})
}

// IPMasker keeps the network half of an address: the first two IPv4
// octets or the first four IPv6 groups.
func IPMasker() Masker {
	return MaskerFunc(func(value string) string {
		addr, err := netip.ParseAddr(value)
		if err != nil {
			return stars(value)
		}
		if addr.Is4() {
			octets := strings.Split(addr.String(), ".")
			return octets[0] + "." + octets[1] + ".xxx.xxx"
		}
		groups := strings.Split(addr.StringExpanded(), ":")
		return strings.Join(groups[:4], ":") + ":xxxx:xxxx:xxxx:xxxx"
	})
}

// UUIDMasker keeps the first segment of a UUID.
func UUIDMasker() Masker {
	return MaskerFunc(func(value string) string {
		parts := strings.Split(value, "-")
		if len(parts) != 5 {
			return stars(value)
		}
		return parts[0] + "-****-****-****-************"
	})
}

// IBANMasker keeps the country code, check digits, and last 4 characters.
func IBANMasker() Masker {
	return MaskerFunc(func(value string) string {
		if len(value) <= 8 {
			return stars(value)
		}
		return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
	})
}

// NameMasker keeps the first letter of each word.
func NameMasker() Masker {
	return MaskerFunc(func(value string) string {
		words := strings.Fields(value)
		for i, word := range words {
			runes := []rune(word)
			words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
		}
		return strings.Join(words, " ")
	})
}

func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskSSN:   SSNMasker(),
		MaskEmail: EmailMasker(),
		MaskPhone: PhoneMasker(),
		MaskCard:  CardMasker(),
		MaskIP:    IPMasker(),
		MaskUUID:  UUIDMasker(),
		MaskIBAN:  IBANMasker(),
		MaskName:  NameMasker(),
	}
}

func extractDigits(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// lastDigits returns the last n digits of s, or false if s has fewer.
func lastDigits(s string, n int) (string, bool) {
	digits := extractDigits(s)
	if len(digits) < n {
		return "", false
	}
	return digits[len(digits)-n:], true
}

func stars(s string) string {
	return strings.Repeat("*", len(s))
}
