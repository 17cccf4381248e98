package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/tahasabih/tink"
)

const (
	// AESGCMNonceSize is the GCM nonce length in bytes.
	AESGCMNonceSize = 12
	// AESGCMTagSize is the GCM tag length in bytes.
	AESGCMTagSize = 16
)

// AESGCM is an AEAD backed by AES-GCM. The ciphertext layout is
// nonce || ciphertext-with-tag, with a fresh random nonce per encryption.
type AESGCM struct {
	aead cipher.AEAD
}

var _ tink.AEAD = (*AESGCM)(nil)

// NewAESGCM creates an AES-GCM AEAD for a 16- or 32-byte key.
func NewAESGCM(key []byte) (*AESGCM, error) {
	if err := ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create GCM mode: %w", err)
	}
	return &AESGCM{aead: aead}, nil
}

// Encrypt encrypts plaintext with associatedData.
func (a *AESGCM) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	nonce, err := RandomBytes(AESGCMNonceSize)
	if err != nil {
		return nil, err
	}
	out := make([]byte, AESGCMNonceSize, AESGCMNonceSize+len(plaintext)+AESGCMTagSize)
	copy(out, nonce)
	return a.aead.Seal(out, nonce, plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext with associatedData.
func (a *AESGCM) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < AESGCMNonceSize+AESGCMTagSize {
		return nil, tink.ErrAuthenticationFailed
	}
	nonce := ciphertext[:AESGCMNonceSize]
	plaintext, err := a.aead.Open(nil, nonce, ciphertext[AESGCMNonceSize:], associatedData)
	if err != nil {
		return nil, tink.ErrAuthenticationFailed
	}
	return plaintext, nil
}
