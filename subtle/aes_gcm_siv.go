package subtle

import (
	"crypto/cipher"
	"fmt"

	siv "github.com/secure-io/siv-go"
	"github.com/tahasabih/tink"
)

const (
	// AESGCMSIVNonceSize is the GCM-SIV nonce length in bytes.
	AESGCMSIVNonceSize = 12
	// AESGCMSIVTagSize is the GCM-SIV tag length in bytes.
	AESGCMSIVTagSize = 16
)

// AESGCMSIV is an AEAD backed by AES-GCM-SIV (RFC 8452), a nonce-misuse
// resistant GCM variant. The ciphertext layout is nonce || ciphertext, with
// a fresh random nonce per encryption.
type AESGCMSIV struct {
	aead cipher.AEAD
}

var _ tink.AEAD = (*AESGCMSIV)(nil)

// NewAESGCMSIV creates an AES-GCM-SIV AEAD for a 16- or 32-byte key.
func NewAESGCMSIV(key []byte) (*AESGCMSIV, error) {
	if err := ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, err
	}
	aead, err := siv.NewGCM(key)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create GCM-SIV mode: %w", err)
	}
	return &AESGCMSIV{aead: aead}, nil
}

// Encrypt encrypts plaintext with associatedData.
func (a *AESGCMSIV) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	nonce, err := RandomBytes(AESGCMSIVNonceSize)
	if err != nil {
		return nil, err
	}
	out := make([]byte, AESGCMSIVNonceSize, AESGCMSIVNonceSize+len(plaintext)+AESGCMSIVTagSize)
	copy(out, nonce)
	return a.aead.Seal(out, nonce, plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext with associatedData.
func (a *AESGCMSIV) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < AESGCMSIVNonceSize+AESGCMSIVTagSize {
		return nil, tink.ErrAuthenticationFailed
	}
	nonce := ciphertext[:AESGCMSIVNonceSize]
	plaintext, err := a.aead.Open(nil, nonce, ciphertext[AESGCMSIVNonceSize:], associatedData)
	if err != nil {
		return nil, tink.ErrAuthenticationFailed
	}
	return plaintext, nil
}
