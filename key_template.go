package tink

// OutputPrefixType selects the ciphertext framing scheme for keys generated
// from a template. It is fixed by the template, never inferred from key
// content.
type OutputPrefixType int

const (
	// UnknownPrefixType is the zero value and is rejected everywhere.
	UnknownPrefixType OutputPrefixType = 0
	// TinkPrefixType frames ciphertexts with 0x01 followed by the big-endian
	// 32-bit key ID.
	TinkPrefixType OutputPrefixType = 1
	// LegacyPrefixType frames ciphertexts with 0x00 followed by the
	// big-endian key ID.
	LegacyPrefixType OutputPrefixType = 2
	// RawPrefixType attaches no prefix at all.
	RawPrefixType OutputPrefixType = 3
	// CrunchyPrefixType is wire-identical to LegacyPrefixType and kept for
	// compatibility with ciphertexts produced by other implementations.
	CrunchyPrefixType OutputPrefixType = 4
)

// String returns the canonical name of the prefix type.
func (t OutputPrefixType) String() string {
	switch t {
	case TinkPrefixType:
		return "TINK"
	case LegacyPrefixType:
		return "LEGACY"
	case RawPrefixType:
		return "RAW"
	case CrunchyPrefixType:
		return "CRUNCHY"
	default:
		return "UNKNOWN"
	}
}

// KeyTemplate names a pre-validated key configuration: the type URL of the
// key manager that generates the key, the serialized key format to generate
// it from, and the output prefix its ciphertexts carry.
//
// Templates are immutable values. Constructors returning the same named
// template always return configuration-equal values: same type URL,
// byte-identical Value, same prefix type. Callers must not rely on pointer
// identity.
type KeyTemplate struct {
	TypeURL          string
	Value            []byte
	OutputPrefixType OutputPrefixType
}

// Equal reports whether two templates describe the same configuration.
func (t KeyTemplate) Equal(other KeyTemplate) bool {
	if t.TypeURL != other.TypeURL || t.OutputPrefixType != other.OutputPrefixType {
		return false
	}
	if len(t.Value) != len(other.Value) {
		return false
	}
	for i := range t.Value {
		if t.Value[i] != other.Value[i] {
			return false
		}
	}
	return true
}
