package tink

import (
	"encoding/binary"
	"fmt"
)

// Output prefix wire constants. The prefix binds a ciphertext to the key
// that produced it and must match bit-for-bit across implementations.
const (
	// TinkPrefixStartByte marks the TINK prefix scheme.
	TinkPrefixStartByte = 0x01
	// LegacyPrefixStartByte marks the LEGACY and CRUNCHY prefix schemes.
	LegacyPrefixStartByte = 0x00
	// NonRawPrefixSize is the total prefix length for every non-RAW scheme:
	// one start byte plus a 4-byte big-endian key ID.
	NonRawPrefixSize = 5
	// RawPrefixSize is the prefix length of the RAW scheme.
	RawPrefixSize = 0
)

// OutputPrefix returns the prefix bytes for the given key ID and prefix
// type. RAW yields an empty prefix.
func OutputPrefix(keyID uint32, prefixType OutputPrefixType) ([]byte, error) {
	switch prefixType {
	case RawPrefixType:
		return nil, nil
	case TinkPrefixType:
		return serializePrefix(TinkPrefixStartByte, keyID), nil
	case LegacyPrefixType, CrunchyPrefixType:
		return serializePrefix(LegacyPrefixStartByte, keyID), nil
	default:
		return nil, fmt.Errorf("%w: unsupported output prefix type %s", ErrInvalidArgument, prefixType)
	}
}

func serializePrefix(startByte byte, keyID uint32) []byte {
	prefix := make([]byte, NonRawPrefixSize)
	prefix[0] = startByte
	binary.BigEndian.PutUint32(prefix[1:], keyID)
	return prefix
}

// FrameCiphertext prepends the output prefix for (keyID, prefixType) to
// innerCiphertext. The inner ciphertext is never inspected.
func FrameCiphertext(innerCiphertext []byte, keyID uint32, prefixType OutputPrefixType) ([]byte, error) {
	prefix, err := OutputPrefix(keyID, prefixType)
	if err != nil {
		return nil, err
	}
	framed := make([]byte, 0, len(prefix)+len(innerCiphertext))
	framed = append(framed, prefix...)
	return append(framed, innerCiphertext...), nil
}

// ParseCiphertext splits a framed ciphertext into the key ID carried by its
// prefix and the inner ciphertext. For RAW the key ID is 0 and hasKeyID is
// false. For the non-RAW schemes it returns ErrMalformedCiphertext when the
// input is shorter than the prefix, or when the start byte does not match
// the scheme.
//
// The returned inner ciphertext aliases the input; callers that need an
// independent copy must make one.
func ParseCiphertext(ciphertext []byte, prefixType OutputPrefixType) (keyID uint32, hasKeyID bool, inner []byte, err error) {
	switch prefixType {
	case RawPrefixType:
		return 0, false, ciphertext, nil
	case TinkPrefixType:
		return parsePrefixed(ciphertext, TinkPrefixStartByte)
	case LegacyPrefixType, CrunchyPrefixType:
		return parsePrefixed(ciphertext, LegacyPrefixStartByte)
	default:
		return 0, false, nil, fmt.Errorf("%w: unsupported output prefix type %s", ErrInvalidArgument, prefixType)
	}
}

func parsePrefixed(ciphertext []byte, startByte byte) (uint32, bool, []byte, error) {
	if len(ciphertext) < NonRawPrefixSize {
		return 0, false, nil, fmt.Errorf("%w: ciphertext shorter than output prefix", ErrMalformedCiphertext)
	}
	if ciphertext[0] != startByte {
		return 0, false, nil, fmt.Errorf("%w: wrong output prefix start byte", ErrMalformedCiphertext)
	}
	keyID := binary.BigEndian.Uint32(ciphertext[1:NonRawPrefixSize])
	return keyID, true, ciphertext[NonRawPrefixSize:], nil
}
