package subtle

import (
	"crypto/cipher"
	"fmt"

	"github.com/tahasabih/tink"
	"golang.org/x/crypto/chacha20poly1305"
)

// XChaCha20Poly1305KeySize is the only key size the algorithm accepts.
const XChaCha20Poly1305KeySize = chacha20poly1305.KeySize

// XChaCha20Poly1305 is an AEAD backed by XChaCha20-Poly1305. The extended
// 24-byte nonce is drawn fresh per encryption and prepended to the
// ciphertext.
type XChaCha20Poly1305 struct {
	aead cipher.AEAD
}

var _ tink.AEAD = (*XChaCha20Poly1305)(nil)

// NewXChaCha20Poly1305 creates an XChaCha20-Poly1305 AEAD for a 32-byte key.
func NewXChaCha20Poly1305(key []byte) (*XChaCha20Poly1305, error) {
	if len(key) != XChaCha20Poly1305KeySize {
		return nil, fmt.Errorf("%w: invalid XChaCha20-Poly1305 key size %d bytes, want %d", tink.ErrInvalidArgument, len(key), XChaCha20Poly1305KeySize)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create XChaCha20-Poly1305: %w", err)
	}
	return &XChaCha20Poly1305{aead: aead}, nil
}

// Encrypt encrypts plaintext with associatedData.
func (x *XChaCha20Poly1305) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	nonce, err := RandomBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plaintext)+chacha20poly1305.Overhead)
	copy(out, nonce)
	return x.aead.Seal(out, nonce, plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext with associatedData.
func (x *XChaCha20Poly1305) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, tink.ErrAuthenticationFailed
	}
	nonce := ciphertext[:chacha20poly1305.NonceSizeX]
	plaintext, err := x.aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSizeX:], associatedData)
	if err != nil {
		return nil, tink.ErrAuthenticationFailed
	}
	return plaintext, nil
}
