package tink

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewKeyID returns a random non-zero key ID. Zero is reserved as "no key"
// in serialized form, so generation retries until a non-zero value comes
// out of the CSPRNG.
func NewKeyID() (uint32, error) {
	var buf [4]byte
	for {
		if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
			return 0, fmt.Errorf("tink: failed to read random key ID: %w", err)
		}
		if id := binary.BigEndian.Uint32(buf[:]); id != 0 {
			return id, nil
		}
	}
}
