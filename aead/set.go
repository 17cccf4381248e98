package aead

import (
	"bytes"
	"fmt"

	"github.com/tahasabih/tink"
)

// Set is an AEAD over a set of keys. Encryption always uses the primary
// key; decryption routes each ciphertext to candidate keys by output
// prefix, which is what makes key rotation transparent to callers: old
// ciphertexts keep decrypting while new ones are produced under the new
// primary.
type Set struct {
	reg     *tink.Registry
	entries []*setEntry
	raw     []*setEntry
	primary *setEntry
}

type setEntry struct {
	keyID      uint32
	prefixType tink.OutputPrefixType
	prefix     []byte
	primitive  tink.AEAD
}

// NewSet returns an empty key set that builds its primitives through reg.
func NewSet(reg *tink.Registry) *Set {
	return &Set{reg: reg}
}

// Add builds the primitive for keyData and adds it to the set under
// (keyID, prefixType). The first key added becomes the primary until
// SetPrimary says otherwise.
func (s *Set) Add(keyData *tink.KeyData, keyID uint32, prefixType tink.OutputPrefixType) error {
	p, err := s.reg.Primitive(keyData)
	if err != nil {
		return err
	}
	primitive, ok := p.(tink.AEAD)
	if !ok {
		return fmt.Errorf("%w: %s is not an AEAD key type", tink.ErrConfiguration, keyData.TypeURL)
	}
	prefix, err := tink.OutputPrefix(keyID, prefixType)
	if err != nil {
		return err
	}
	entry := &setEntry{
		keyID:      keyID,
		prefixType: prefixType,
		prefix:     prefix,
		primitive:  primitive,
	}
	s.entries = append(s.entries, entry)
	if prefixType == tink.RawPrefixType {
		s.raw = append(s.raw, entry)
	}
	if s.primary == nil {
		s.primary = entry
	}
	return nil
}

// SetPrimary makes the entry with keyID the encryption key. When several
// entries share the ID the first one added wins.
func (s *Set) SetPrimary(keyID uint32) error {
	for _, e := range s.entries {
		if e.keyID == keyID {
			s.primary = e
			return nil
		}
	}
	return fmt.Errorf("%w: no key with ID %d in the set", tink.ErrConfiguration, keyID)
}

// Encrypt encrypts plaintext under the primary key, framing the ciphertext
// with the primary's output prefix.
func (s *Set) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	if s.primary == nil {
		return nil, fmt.Errorf("%w: key set is empty", tink.ErrConfiguration)
	}
	inner, err := s.primary.primitive.Encrypt(plaintext, associatedData)
	tink.RecordOperation("encrypt", len(plaintext), err)
	if err != nil {
		return nil, err
	}
	framed := make([]byte, 0, len(s.primary.prefix)+len(inner))
	framed = append(framed, s.primary.prefix...)
	return append(framed, inner...), nil
}

// Decrypt tries the keys whose output prefix matches the ciphertext first,
// then every RAW key. Failures are reported uniformly so the error never
// reveals which keys were tried or why they failed.
func (s *Set) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	plaintext, err := s.decrypt(ciphertext, associatedData)
	tink.RecordOperation("decrypt", len(ciphertext), err)
	return plaintext, err
}

func (s *Set) decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) >= tink.NonRawPrefixSize {
		prefix := ciphertext[:tink.NonRawPrefixSize]
		inner := ciphertext[tink.NonRawPrefixSize:]
		for _, e := range s.entries {
			if e.prefixType == tink.RawPrefixType || !bytes.Equal(e.prefix, prefix) {
				continue
			}
			if plaintext, err := e.primitive.Decrypt(inner, associatedData); err == nil {
				return plaintext, nil
			}
		}
	}
	for _, e := range s.raw {
		if plaintext, err := e.primitive.Decrypt(ciphertext, associatedData); err == nil {
			return plaintext, nil
		}
	}
	if len(ciphertext) < tink.NonRawPrefixSize && len(s.raw) == 0 {
		return nil, fmt.Errorf("%w: ciphertext shorter than output prefix", tink.ErrMalformedCiphertext)
	}
	return nil, tink.ErrAuthenticationFailed
}
