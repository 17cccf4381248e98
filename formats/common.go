package formats

// HashType enumerates the hash functions used by keyed-MAC and key
// derivation parameters. Values match the google.crypto.tink common proto.
type HashType uint32

const (
	UnknownHash HashType = 0
	SHA1        HashType = 1
	SHA384      HashType = 2
	SHA256      HashType = 3
	SHA512      HashType = 4
	SHA224      HashType = 5
)

// String returns the canonical name of the hash type.
func (h HashType) String() string {
	switch h {
	case SHA1:
		return "SHA1"
	case SHA224:
		return "SHA224"
	case SHA256:
		return "SHA256"
	case SHA384:
		return "SHA384"
	case SHA512:
		return "SHA512"
	default:
		return "UNKNOWN_HASH"
	}
}
