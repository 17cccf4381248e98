package aead

import (
	"fmt"

	"github.com/tahasabih/tink"
)

// wrappedAEAD frames the ciphertexts of an inner AEAD with an output prefix
// so that decryption can later route ciphertexts back to the key that
// produced them.
type wrappedAEAD struct {
	primitive  tink.AEAD
	prefix     []byte
	prefixType tink.OutputPrefixType
}

var _ tink.AEAD = (*wrappedAEAD)(nil)

// NewWithKeyData builds an AEAD from keyData using the registry and wraps it
// so every ciphertext carries the output prefix for (keyID, prefixType).
func NewWithKeyData(reg *tink.Registry, keyData *tink.KeyData, keyID uint32, prefixType tink.OutputPrefixType) (tink.AEAD, error) {
	p, err := reg.Primitive(keyData)
	if err != nil {
		return nil, err
	}
	primitive, ok := p.(tink.AEAD)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an AEAD key type", tink.ErrConfiguration, keyData.TypeURL)
	}
	prefix, err := tink.OutputPrefix(keyID, prefixType)
	if err != nil {
		return nil, err
	}
	return &wrappedAEAD{
		primitive:  primitive,
		prefix:     prefix,
		prefixType: prefixType,
	}, nil
}

// Encrypt encrypts plaintext with the inner AEAD and prepends the output
// prefix.
func (w *wrappedAEAD) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	inner, err := w.primitive.Encrypt(plaintext, associatedData)
	tink.RecordOperation("encrypt", len(plaintext), err)
	if err != nil {
		return nil, err
	}
	framed := make([]byte, 0, len(w.prefix)+len(inner))
	framed = append(framed, w.prefix...)
	return append(framed, inner...), nil
}

// Decrypt strips the output prefix and decrypts the remainder. A ciphertext
// shorter than the prefix is malformed; a prefix that does not match this
// key fails the same way as a tampered ciphertext.
func (w *wrappedAEAD) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	plaintext, err := w.decrypt(ciphertext, associatedData)
	tink.RecordOperation("decrypt", len(ciphertext), err)
	return plaintext, err
}

func (w *wrappedAEAD) decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < len(w.prefix) {
		return nil, fmt.Errorf("%w: ciphertext shorter than output prefix", tink.ErrMalformedCiphertext)
	}
	for i, b := range w.prefix {
		if ciphertext[i] != b {
			return nil, tink.ErrAuthenticationFailed
		}
	}
	return w.primitive.Decrypt(ciphertext[len(w.prefix):], associatedData)
}
