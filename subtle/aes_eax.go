package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/tahasabih/tink"
)

const (
	// AESEAXTagSize is the EAX tag length in bytes.
	AESEAXTagSize = 16
	// AESEAXMinIVSize and AESEAXMaxIVSize bound the accepted IV lengths.
	AESEAXMinIVSize = 12
	AESEAXMaxIVSize = 16
)

// AESEAX is an AEAD backed by AES in EAX mode. EAX composes OMAC (CMAC with
// a domain-separation block) with AES-CTR:
//
//	N = OMAC^0(iv), H = OMAC^1(associatedData), C = CTR_N(plaintext)
//	tag = N XOR OMAC^2(C) XOR H
//
// The ciphertext layout is iv || C || tag, with a fresh random IV per
// encryption.
type AESEAX struct {
	mac    *cmac
	block  cipher.Block
	ivSize int
}

var _ tink.AEAD = (*AESEAX)(nil)

// NewAESEAX creates an AES-EAX AEAD for a 16- or 32-byte key and an IV size
// of 12 to 16 bytes.
func NewAESEAX(key []byte, ivSize int) (*AESEAX, error) {
	if err := ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, err
	}
	if ivSize < AESEAXMinIVSize || ivSize > AESEAXMaxIVSize {
		return nil, fmt.Errorf("%w: invalid EAX IV size %d bytes, want 12..16", tink.ErrInvalidArgument, ivSize)
	}

	mac, err := newCMAC(key)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create AES cipher: %w", err)
	}
	return &AESEAX{mac: mac, block: block, ivSize: ivSize}, nil
}

// omac computes OMAC^t(data): CMAC over a full block encoding t followed by
// the data.
func (a *AESEAX) omac(t byte, data []byte) [aes.BlockSize]byte {
	buf := make([]byte, aes.BlockSize+len(data))
	buf[aes.BlockSize-1] = t
	copy(buf[aes.BlockSize:], data)
	return a.mac.sum(buf)
}

// Encrypt encrypts plaintext with associatedData.
func (a *AESEAX) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	iv, err := RandomBytes(uint32(a.ivSize))
	if err != nil {
		return nil, err
	}

	n := a.omac(0, iv)
	h := a.omac(1, associatedData)

	out := make([]byte, a.ivSize+len(plaintext)+AESEAXTagSize)
	copy(out, iv)

	ctBody := out[a.ivSize : a.ivSize+len(plaintext)]
	ctr := n // CTR consumes the full OMAC block as its initial counter
	cipher.NewCTR(a.block, ctr[:]).XORKeyStream(ctBody, plaintext)

	c := a.omac(2, ctBody)
	tag := out[a.ivSize+len(plaintext):]
	for i := 0; i < AESEAXTagSize; i++ {
		tag[i] = n[i] ^ c[i] ^ h[i]
	}
	return out, nil
}

// Decrypt decrypts ciphertext with associatedData.
func (a *AESEAX) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < a.ivSize+AESEAXTagSize {
		return nil, tink.ErrAuthenticationFailed
	}
	iv := ciphertext[:a.ivSize]
	ctBody := ciphertext[a.ivSize : len(ciphertext)-AESEAXTagSize]
	tag := ciphertext[len(ciphertext)-AESEAXTagSize:]

	n := a.omac(0, iv)
	h := a.omac(1, associatedData)
	c := a.omac(2, ctBody)

	var want [AESEAXTagSize]byte
	for i := 0; i < AESEAXTagSize; i++ {
		want[i] = n[i] ^ c[i] ^ h[i]
	}
	if subtle.ConstantTimeCompare(want[:], tag) != 1 {
		return nil, tink.ErrAuthenticationFailed
	}

	plaintext := make([]byte, len(ctBody))
	ctr := n
	cipher.NewCTR(a.block, ctr[:]).XORKeyStream(plaintext, ctBody)
	return plaintext, nil
}
