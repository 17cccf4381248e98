package streamingaead

import (
	"bytes"
	"io"
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

func TestStreamingKeyManagerEndToEnd(t *testing.T) {
	reg := newTestRegistry(t)

	templates := []struct {
		name     string
		template *tink.KeyTemplate
	}{
		{"aes128 gcm hkdf 4kb", AES128GCMHKDF4KBKeyTemplate()},
		{"aes256 gcm hkdf 4kb", AES256GCMHKDF4KBKeyTemplate()},
	}
	for _, tt := range templates {
		t.Run(tt.name, func(t *testing.T) {
			keyData, err := reg.NewKeyData(*tt.template)
			require.NoError(t, err)
			assert.Equal(t, AESGCMHKDFStreamingTypeURL, keyData.TypeURL)

			primitive, err := NewStreamingAEAD(reg, keyData)
			require.NoError(t, err)

			plaintext := bytes.Repeat([]byte("stream"), 3000) // spans multiple 4 KiB segments
			associatedData := []byte("ad")

			var buf bytes.Buffer
			w, err := primitive.NewEncryptingWriter(&buf, associatedData)
			require.NoError(t, err)
			_, err = w.Write(plaintext)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := primitive.NewDecryptingReader(bytes.NewReader(buf.Bytes()), associatedData)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)

			_, err = primitive.NewDecryptingReader(bytes.NewReader(nil), associatedData)
			assert.ErrorIs(t, err, tink.ErrAuthenticationFailed)
		})
	}
}

func TestStreamingTemplates(t *testing.T) {
	for _, tt := range []struct {
		template *tink.KeyTemplate
		keySize  uint32
	}{
		{AES128GCMHKDF4KBKeyTemplate(), 16},
		{AES256GCMHKDF4KBKeyTemplate(), 32},
	} {
		format, err := formats.ParseAESGCMHKDFStreamingKeyFormat(tt.template.Value)
		require.NoError(t, err)
		assert.Equal(t, tt.keySize, format.KeySize)
		assert.Equal(t, tt.keySize, format.Params.DerivedKeySize)
		assert.Equal(t, uint32(4096), format.Params.CiphertextSegmentSize)
		assert.Equal(t, formats.SHA256, format.Params.HKDFHashType)

		// Streaming ciphertexts carry their own header; no output prefix.
		assert.Equal(t, tink.RawPrefixType, tt.template.OutputPrefixType)
	}
}

func TestStreamingKeyManagerValidation(t *testing.T) {
	km := new(AESGCMHKDFStreamingKeyManager)

	valid := func() *formats.AESGCMHKDFStreamingKeyFormat {
		return &formats.AESGCMHKDFStreamingKeyFormat{
			Params: &formats.AESGCMHKDFStreamingParams{
				CiphertextSegmentSize: 4096,
				DerivedKeySize:        32,
				HKDFHashType:          formats.SHA256,
			},
			KeySize: 32,
		}
	}
	require.NoError(t, km.ValidateKeyFormat(valid()))

	tests := []struct {
		name   string
		mutate func(*formats.AESGCMHKDFStreamingKeyFormat)
	}{
		{"derived key 24", func(f *formats.AESGCMHKDFStreamingKeyFormat) { f.Params.DerivedKeySize = 24 }},
		{"key smaller than derived", func(f *formats.AESGCMHKDFStreamingKeyFormat) { f.KeySize = 16 }},
		{"segment too small", func(f *formats.AESGCMHKDFStreamingKeyFormat) { f.Params.CiphertextSegmentSize = 56 }},
		{"unsupported hash", func(f *formats.AESGCMHKDFStreamingKeyFormat) { f.Params.HKDFHashType = formats.SHA224 }},
		{"missing params", func(f *formats.AESGCMHKDFStreamingKeyFormat) { f.Params = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := valid()
			tt.mutate(format)
			assert.True(t, tink.IsInvalidArgument(km.ValidateKeyFormat(format)))
		})
	}

	future := valid()
	future.Version = 1
	assert.True(t, tink.IsUnsupportedVersion(km.ValidateKeyFormat(future)))
}

func TestNewStreamingAEADRejectsAEADKeys(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := NewStreamingAEAD(reg, &tink.KeyData{TypeURL: "type.googleapis.com/google.crypto.tink.AesGcmKey"})
	assert.True(t, tink.IsConfiguration(err))
}
