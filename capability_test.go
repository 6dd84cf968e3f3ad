package props

import "testing"

func TestIsValidSecretAlgo(t *testing.T) {
	tests := []struct {
		algo SecretAlgo
		want bool
	}{
		{SecretObfuscate, true},
		{SecretAES, true},
		{SecretRSA, true},
		{SecretEnvelope, true},
		{SecretXChaCha, true},
		{"argon2", false},
		{"true", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := IsValidSecretAlgo(tt.algo); got != tt.want {
				t.Errorf("IsValidSecretAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}

func TestIsValidMaskType(t *testing.T) {
	tests := []struct {
		mt   MaskType
		want bool
	}{
		{MaskSSN, true},
		{MaskEmail, true},
		{MaskPhone, true},
		{MaskCard, true},
		{MaskIP, true},
		{MaskUUID, true},
		{MaskIBAN, true},
		{MaskName, true},
		{"unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mt), func(t *testing.T) {
			if got := IsValidMaskType(tt.mt); got != tt.want {
				t.Errorf("IsValidMaskType(%q) = %v, want %v", tt.mt, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindInteger, "integer"},
		{KindBoolean, "boolean"},
		{Kind(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
