package subtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahasabih/tink"
)

// First AES-128-GCM-SIV vector from RFC 8452: empty plaintext, empty AAD.
// The ciphertext layout is nonce || ct || tag.
func TestAESGCMSIVRFC8452Vector(t *testing.T) {
	primitive, err := NewAESGCMSIV(mustHex(t, "01000000000000000000000000000000"))
	require.NoError(t, err)

	ciphertext := append(
		mustHex(t, "030000000000000000000000"),
		mustHex(t, "dc20e2d83f25705bb49e439eca56de25")...,
	)
	plaintext, err := primitive.Decrypt(ciphertext, nil)
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestAESGCMSIVRoundTrip(t *testing.T) {
	for _, keySize := range []uint32{16, 32} {
		key, err := RandomBytes(keySize)
		require.NoError(t, err)
		primitive, err := NewAESGCMSIV(key)
		require.NoError(t, err)

		plaintext := []byte("nonce misuse resistant")
		associatedData := []byte("ad")

		ciphertext, err := primitive.Encrypt(plaintext, associatedData)
		require.NoError(t, err)
		assert.Len(t, ciphertext, AESGCMSIVNonceSize+len(plaintext)+AESGCMSIVTagSize)

		got, err := primitive.Decrypt(ciphertext, associatedData)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestAESGCMSIVRejectsTampering(t *testing.T) {
	key, err := RandomBytes(16)
	require.NoError(t, err)
	primitive, err := NewAESGCMSIV(key)
	require.NoError(t, err)

	ciphertext, err := primitive.Encrypt([]byte("secret"), []byte("ad"))
	require.NoError(t, err)

	for i := range ciphertext {
		mutated := append([]byte(nil), ciphertext...)
		mutated[i] ^= 0x01
		_, err := primitive.Decrypt(mutated, []byte("ad"))
		assert.ErrorIs(t, err, tink.ErrAuthenticationFailed, "byte %d", i)
	}

	_, err = primitive.Decrypt(ciphertext[:AESGCMSIVNonceSize], []byte("ad"))
	assert.ErrorIs(t, err, tink.ErrAuthenticationFailed)
}

func TestNewAESGCMSIVRejectsBadKeySizes(t *testing.T) {
	for _, size := range []uint32{15, 17, 24, 31, 33} {
		key, err := RandomBytes(size)
		require.NoError(t, err)
		_, err = NewAESGCMSIV(key)
		assert.True(t, tink.IsInvalidArgument(err), "key size %d", size)
	}
}
