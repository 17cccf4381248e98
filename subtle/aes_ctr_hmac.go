package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
)

const (
	// AESCTRMinIVSize is the smallest accepted CTR IV. Shorter IVs are
	// zero-padded to the block size to form the initial counter.
	AESCTRMinIVSize = 12
	// minHMACTagSize is the smallest accepted truncated MAC length.
	minHMACTagSize = 10
)

// AESCTRHMAC is an encrypt-then-MAC AEAD: AES-CTR for confidentiality and
// HMAC for integrity. The MAC covers associatedData || iv || ciphertext
// followed by the associated data length in bits as a big-endian 64-bit
// value, which makes the (associatedData, ciphertext) split unambiguous.
// The ciphertext layout is iv || C || tag.
type AESCTRHMAC struct {
	block   cipher.Block
	hmacKey []byte
	newHash func() hash.Hash
	ivSize  int
	tagSize int
}

var _ tink.AEAD = (*AESCTRHMAC)(nil)

// NewAESCTRHMAC creates the composed AEAD. aesKey must be 16 or 32 bytes,
// ivSize 12 to 16, and tagSize between 10 and the hash's output size.
func NewAESCTRHMAC(aesKey []byte, ivSize int, hash formats.HashType, hmacKey []byte, tagSize int) (*AESCTRHMAC, error) {
	if err := ValidateAESKeySize(uint32(len(aesKey))); err != nil {
		return nil, err
	}
	if ivSize < AESCTRMinIVSize || ivSize > aes.BlockSize {
		return nil, fmt.Errorf("%w: invalid CTR IV size %d bytes, want 12..16", tink.ErrInvalidArgument, ivSize)
	}
	newHash, maxTag, err := hashFactory(hash)
	if err != nil {
		return nil, err
	}
	if tagSize < minHMACTagSize || tagSize > maxTag {
		return nil, fmt.Errorf("%w: invalid tag size %d bytes for %s", tink.ErrInvalidArgument, tagSize, hash)
	}
	if len(hmacKey) < 16 {
		return nil, fmt.Errorf("%w: HMAC key too short, want at least 16 bytes", tink.ErrInvalidArgument)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create AES cipher: %w", err)
	}
	return &AESCTRHMAC{
		block:   block,
		hmacKey: append([]byte(nil), hmacKey...),
		newHash: newHash,
		ivSize:  ivSize,
		tagSize: tagSize,
	}, nil
}

func hashFactory(h formats.HashType) (func() hash.Hash, int, error) {
	switch h {
	case formats.SHA1:
		return sha1.New, sha1.Size, nil
	case formats.SHA256:
		return sha256.New, sha256.Size, nil
	case formats.SHA512:
		return sha512.New, sha512.Size, nil
	default:
		return nil, 0, fmt.Errorf("%w: unsupported hash type %s", tink.ErrInvalidArgument, h)
	}
}

func (a *AESCTRHMAC) counter(iv []byte) []byte {
	counter := make([]byte, aes.BlockSize)
	copy(counter, iv)
	return counter
}

func (a *AESCTRHMAC) tag(iv, ctBody, associatedData []byte) []byte {
	mac := hmac.New(a.newHash, a.hmacKey)
	mac.Write(associatedData)
	mac.Write(iv)
	mac.Write(ctBody)
	var adBits [8]byte
	binary.BigEndian.PutUint64(adBits[:], uint64(len(associatedData))*8)
	mac.Write(adBits[:])
	return mac.Sum(nil)[:a.tagSize]
}

// Encrypt encrypts plaintext with associatedData.
func (a *AESCTRHMAC) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	iv, err := RandomBytes(uint32(a.ivSize))
	if err != nil {
		return nil, err
	}

	out := make([]byte, a.ivSize+len(plaintext)+a.tagSize)
	copy(out, iv)
	ctBody := out[a.ivSize : a.ivSize+len(plaintext)]
	cipher.NewCTR(a.block, a.counter(iv)).XORKeyStream(ctBody, plaintext)

	copy(out[a.ivSize+len(plaintext):], a.tag(iv, ctBody, associatedData))
	return out, nil
}

// Decrypt decrypts ciphertext with associatedData.
func (a *AESCTRHMAC) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < a.ivSize+a.tagSize {
		return nil, tink.ErrAuthenticationFailed
	}
	iv := ciphertext[:a.ivSize]
	ctBody := ciphertext[a.ivSize : len(ciphertext)-a.tagSize]
	tag := ciphertext[len(ciphertext)-a.tagSize:]

	if subtle.ConstantTimeCompare(a.tag(iv, ctBody, associatedData), tag) != 1 {
		return nil, tink.ErrAuthenticationFailed
	}

	plaintext := make([]byte, len(ctBody))
	cipher.NewCTR(a.block, a.counter(iv)).XORKeyStream(plaintext, ctBody)
	return plaintext, nil
}
