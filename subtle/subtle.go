// Package subtle provides the raw authenticated-encryption constructions
// the key managers bind keys to. Code in this package works on raw key
// bytes and performs no key-format validation of its own; that belongs to
// the managers. Constructors still reject key and parameter sizes the
// construction itself cannot support.
package subtle

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tahasabih/tink"
)

// AES key sizes accepted by every AES-based construction. AES-192 is
// deliberately not on the allow-list.
const (
	AES128KeySize = 16
	AES256KeySize = 32
)

// ValidateAESKeySize rejects every key size other than 16 or 32 bytes.
func ValidateAESKeySize(sizeInBytes uint32) error {
	if sizeInBytes != AES128KeySize && sizeInBytes != AES256KeySize {
		return fmt.Errorf("%w: invalid AES key size %d bytes, want 16 or 32", tink.ErrInvalidArgument, sizeInBytes)
	}
	return nil
}

// RandomBytes returns n bytes from the platform CSPRNG.
func RandomBytes(n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("subtle: failed to read random bytes: %w", err)
	}
	return b, nil
}

// RandomUint32 returns a random 32-bit value from the platform CSPRNG.
func RandomUint32() (uint32, error) {
	b, err := RandomBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
