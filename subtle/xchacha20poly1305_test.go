package subtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/tahasabih/tink"
)

func TestXChaCha20Poly1305RoundTrip(t *testing.T) {
	key, err := RandomBytes(XChaCha20Poly1305KeySize)
	require.NoError(t, err)
	primitive, err := NewXChaCha20Poly1305(key)
	require.NoError(t, err)

	tests := []struct {
		name           string
		plaintext      []byte
		associatedData []byte
	}{
		{"empty", nil, nil},
		{"with ad", []byte("payload"), []byte("ad")},
		{"large", make([]byte, 4096), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := primitive.Encrypt(tt.plaintext, tt.associatedData)
			require.NoError(t, err)
			assert.Len(t, ciphertext, chacha20poly1305.NonceSizeX+len(tt.plaintext)+chacha20poly1305.Overhead)

			got, err := primitive.Decrypt(ciphertext, tt.associatedData)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

// Ciphertexts must open with a plain x/crypto XChaCha20-Poly1305 using the
// prepended nonce.
func TestXChaCha20Poly1305MatchesXCrypto(t *testing.T) {
	key, err := RandomBytes(XChaCha20Poly1305KeySize)
	require.NoError(t, err)
	primitive, err := NewXChaCha20Poly1305(key)
	require.NoError(t, err)

	plaintext := []byte("independent check")
	ciphertext, err := primitive.Encrypt(plaintext, []byte("ad"))
	require.NoError(t, err)

	aead, err := chacha20poly1305.NewX(key)
	require.NoError(t, err)
	got, err := aead.Open(nil, ciphertext[:chacha20poly1305.NonceSizeX], ciphertext[chacha20poly1305.NonceSizeX:], []byte("ad"))
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestXChaCha20Poly1305RejectsTampering(t *testing.T) {
	key, err := RandomBytes(XChaCha20Poly1305KeySize)
	require.NoError(t, err)
	primitive, err := NewXChaCha20Poly1305(key)
	require.NoError(t, err)

	ciphertext, err := primitive.Encrypt([]byte("secret"), []byte("ad"))
	require.NoError(t, err)

	for i := range ciphertext {
		mutated := append([]byte(nil), ciphertext...)
		mutated[i] ^= 0x01
		_, err := primitive.Decrypt(mutated, []byte("ad"))
		assert.ErrorIs(t, err, tink.ErrAuthenticationFailed, "byte %d", i)
	}

	_, err = primitive.Decrypt(nil, []byte("ad"))
	assert.ErrorIs(t, err, tink.ErrAuthenticationFailed)
}

func TestNewXChaCha20Poly1305RejectsBadKeySizes(t *testing.T) {
	for _, size := range []uint32{16, 31, 33} {
		key, err := RandomBytes(size)
		require.NoError(t, err)
		_, err = NewXChaCha20Poly1305(key)
		assert.True(t, tink.IsInvalidArgument(err), "key size %d", size)
	}
}
