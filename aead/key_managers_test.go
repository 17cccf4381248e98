package aead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
)

func newTestRegistry(t *testing.T) *tink.Registry {
	t.Helper()
	reg := tink.NewRegistry()
	require.NoError(t, RegisterKeyManagers(reg))
	return reg
}

// Every key manager must generate working key material from its templates
// and build an AEAD that round-trips.
func TestKeyManagersEndToEnd(t *testing.T) {
	reg := newTestRegistry(t)

	templates := []struct {
		name     string
		template *tink.KeyTemplate
	}{
		{"aes128 gcm", AES128GCMKeyTemplate()},
		{"aes256 gcm", AES256GCMKeyTemplate()},
		{"aes128 eax", AES128EAXKeyTemplate()},
		{"aes256 eax", AES256EAXKeyTemplate()},
		{"aes128 gcm siv", AES128GCMSIVKeyTemplate()},
		{"aes256 gcm siv", AES256GCMSIVKeyTemplate()},
		{"aes128 ctr hmac sha256", AES128CTRHMACSHA256KeyTemplate()},
		{"aes256 ctr hmac sha256", AES256CTRHMACSHA256KeyTemplate()},
		{"xchacha20 poly1305", XChaCha20Poly1305KeyTemplate()},
	}
	for _, tt := range templates {
		t.Run(tt.name, func(t *testing.T) {
			keyData, err := reg.NewKeyData(*tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.template.TypeURL, keyData.TypeURL)
			assert.Equal(t, tink.KeyMaterialSymmetric, keyData.KeyMaterialType)

			p, err := reg.Primitive(keyData)
			require.NoError(t, err)
			primitive, ok := p.(tink.AEAD)
			require.True(t, ok)

			plaintext := []byte("end to end")
			associatedData := []byte("ad")
			ciphertext, err := primitive.Encrypt(plaintext, associatedData)
			require.NoError(t, err)

			got, err := primitive.Decrypt(ciphertext, associatedData)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)

			_, err = primitive.Decrypt(ciphertext, []byte("other ad"))
			assert.ErrorIs(t, err, tink.ErrAuthenticationFailed)
		})
	}
}

// Fresh key material on every call.
func TestNewKeyDataIsRandomized(t *testing.T) {
	reg := newTestRegistry(t)
	template := AES256GCMKeyTemplate()

	a, err := reg.NewKeyData(*template)
	require.NoError(t, err)
	b, err := reg.NewKeyData(*template)
	require.NoError(t, err)
	assert.NotEqual(t, a.Value, b.Value)
}

func TestAESGCMKeyManagerKeySizes(t *testing.T) {
	km := new(AESGCMKeyManager)
	for _, tt := range []struct {
		keySize uint32
		valid   bool
	}{
		{15, false}, {16, true}, {17, false}, {24, false},
		{31, false}, {32, true}, {33, false},
	} {
		format := &formats.AESGCMKeyFormat{KeySize: tt.keySize}
		keyData, err := km.NewKeyData(format.Marshal())
		if !tt.valid {
			assert.True(t, tink.IsInvalidArgument(err), "key size %d", tt.keySize)
			continue
		}
		require.NoError(t, err, "key size %d", tt.keySize)

		key, err := formats.ParseAESGCMKey(keyData.Value)
		require.NoError(t, err)
		assert.Len(t, key.KeyValue, int(tt.keySize))
		assert.Zero(t, key.Version)
	}
}

func TestAESEAXKeyManagerValidation(t *testing.T) {
	km := new(AESEAXKeyManager)

	_, err := km.NewKeyData((&formats.AESEAXKeyFormat{
		Params:  &formats.AESEAXParams{IVSize: 11},
		KeySize: 16,
	}).Marshal())
	assert.True(t, tink.IsInvalidArgument(err))

	_, err = km.NewKeyData((&formats.AESEAXKeyFormat{KeySize: 16}).Marshal())
	assert.True(t, tink.IsInvalidArgument(err))

	_, err = km.NewKeyData((&formats.AESEAXKeyFormat{
		Params:  &formats.AESEAXParams{IVSize: 16},
		KeySize: 24,
	}).Marshal())
	assert.True(t, tink.IsInvalidArgument(err))
}

func TestAESCTRHMACAEADKeyManagerValidation(t *testing.T) {
	valid := func() *formats.AESCTRHMACAEADKeyFormat {
		return &formats.AESCTRHMACAEADKeyFormat{
			AESCTRKeyFormat: &formats.AESCTRKeyFormat{
				Params:  &formats.AESCTRParams{IVSize: 16},
				KeySize: 16,
			},
			HMACKeyFormat: &formats.HMACKeyFormat{
				Params:  &formats.HMACParams{Hash: formats.SHA256, TagSize: 16},
				KeySize: 32,
			},
		}
	}

	km := new(AESCTRHMACAEADKeyManager)
	require.NoError(t, km.ValidateKeyFormat(valid()))

	tests := []struct {
		name   string
		mutate func(*formats.AESCTRHMACAEADKeyFormat)
	}{
		{"aes key 24", func(f *formats.AESCTRHMACAEADKeyFormat) { f.AESCTRKeyFormat.KeySize = 24 }},
		{"iv too small", func(f *formats.AESCTRHMACAEADKeyFormat) { f.AESCTRKeyFormat.Params.IVSize = 11 }},
		{"hmac key too small", func(f *formats.AESCTRHMACAEADKeyFormat) { f.HMACKeyFormat.KeySize = 15 }},
		{"tag too small", func(f *formats.AESCTRHMACAEADKeyFormat) { f.HMACKeyFormat.Params.TagSize = 9 }},
		{"tag beyond hash", func(f *formats.AESCTRHMACAEADKeyFormat) { f.HMACKeyFormat.Params.TagSize = 33 }},
		{"unsupported hash", func(f *formats.AESCTRHMACAEADKeyFormat) { f.HMACKeyFormat.Params.Hash = formats.SHA224 }},
		{"missing ctr format", func(f *formats.AESCTRHMACAEADKeyFormat) { f.AESCTRKeyFormat = nil }},
		{"missing hmac format", func(f *formats.AESCTRHMACAEADKeyFormat) { f.HMACKeyFormat = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := valid()
			tt.mutate(format)
			assert.True(t, tink.IsInvalidArgument(km.ValidateKeyFormat(format)))
		})
	}
}

func TestAESCTRHMACAEADKeyManagerSubKeyLengths(t *testing.T) {
	km := new(AESCTRHMACAEADKeyManager)
	keyData, err := km.NewKeyData(AES256CTRHMACSHA256KeyTemplate().Value)
	require.NoError(t, err)

	key, err := formats.ParseAESCTRHMACAEADKey(keyData.Value)
	require.NoError(t, err)
	assert.Len(t, key.AESCTRKey.KeyValue, 32)
	assert.Len(t, key.HMACKey.KeyValue, 32)
	assert.Equal(t, uint32(32), key.HMACKey.Params.TagSize)
	assert.Equal(t, formats.SHA256, key.HMACKey.Params.Hash)
}

func TestXChaCha20Poly1305KeyManagerKeyLength(t *testing.T) {
	km := new(XChaCha20Poly1305KeyManager)
	keyData, err := km.NewKeyData(XChaCha20Poly1305KeyTemplate().Value)
	require.NoError(t, err)

	key, err := formats.ParseXChaCha20Poly1305Key(keyData.Value)
	require.NoError(t, err)
	assert.Len(t, key.KeyValue, 32)
}

// Keys claiming a version above the manager's must be rejected.
func TestKeyManagersRejectFutureVersions(t *testing.T) {
	gcmKey := &formats.AESGCMKey{Version: 1, KeyValue: make([]byte, 16)}
	_, err := new(AESGCMKeyManager).Primitive(gcmKey.Marshal())
	assert.True(t, tink.IsUnsupportedVersion(err))

	xKey := &formats.XChaCha20Poly1305Key{Version: 1, KeyValue: make([]byte, 32)}
	_, err = new(XChaCha20Poly1305KeyManager).Primitive(xKey.Marshal())
	assert.True(t, tink.IsUnsupportedVersion(err))
}

func TestPrimitiveRejectsGarbage(t *testing.T) {
	_, err := new(AESGCMKeyManager).Primitive([]byte{0xFF, 0xFF, 0xFF})
	assert.True(t, tink.IsInvalidArgument(err))
}
