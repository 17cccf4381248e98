package tink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPrefix(t *testing.T) {
	tests := []struct {
		name       string
		keyID      uint32
		prefixType OutputPrefixType
		want       []byte
	}{
		{
			name:       "tink",
			keyID:      0x01020304,
			prefixType: TinkPrefixType,
			want:       []byte{0x01, 0x01, 0x02, 0x03, 0x04},
		},
		{
			name:       "legacy",
			keyID:      0x01020304,
			prefixType: LegacyPrefixType,
			want:       []byte{0x00, 0x01, 0x02, 0x03, 0x04},
		},
		{
			name:       "crunchy",
			keyID:      0x01020304,
			prefixType: CrunchyPrefixType,
			want:       []byte{0x00, 0x01, 0x02, 0x03, 0x04},
		},
		{
			name:       "raw",
			keyID:      0x01020304,
			prefixType: RawPrefixType,
			want:       nil,
		},
		{
			name:       "tink zero key id",
			keyID:      0,
			prefixType: TinkPrefixType,
			want:       []byte{0x01, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:       "tink max key id",
			keyID:      0xFFFFFFFF,
			prefixType: TinkPrefixType,
			want:       []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputPrefix(tt.keyID, tt.prefixType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputPrefixUnknownType(t *testing.T) {
	_, err := OutputPrefix(42, UnknownPrefixType)
	assert.True(t, IsInvalidArgument(err))
}

func TestFrameAndParseCiphertext(t *testing.T) {
	inner := []byte("inner ciphertext bytes")
	for _, prefixType := range []OutputPrefixType{TinkPrefixType, LegacyPrefixType, CrunchyPrefixType} {
		t.Run(prefixType.String(), func(t *testing.T) {
			framed, err := FrameCiphertext(inner, 0xDEADBEEF, prefixType)
			require.NoError(t, err)
			require.Len(t, framed, NonRawPrefixSize+len(inner))

			keyID, hasKeyID, got, err := ParseCiphertext(framed, prefixType)
			require.NoError(t, err)
			assert.True(t, hasKeyID)
			assert.Equal(t, uint32(0xDEADBEEF), keyID)
			assert.Equal(t, inner, got)
		})
	}
}

func TestParseCiphertextRaw(t *testing.T) {
	inner := []byte{0x01, 0x02}
	keyID, hasKeyID, got, err := ParseCiphertext(inner, RawPrefixType)
	require.NoError(t, err)
	assert.False(t, hasKeyID)
	assert.Zero(t, keyID)
	assert.Equal(t, inner, got)
}

func TestParseCiphertextTooShort(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		_, _, _, err := ParseCiphertext(make([]byte, n), TinkPrefixType)
		assert.True(t, IsMalformedCiphertext(err), "length %d", n)
	}

	// Exactly the prefix is valid framing with an empty inner ciphertext.
	framed, err := FrameCiphertext(nil, 7, TinkPrefixType)
	require.NoError(t, err)
	keyID, hasKeyID, inner, err := ParseCiphertext(framed, TinkPrefixType)
	require.NoError(t, err)
	assert.True(t, hasKeyID)
	assert.Equal(t, uint32(7), keyID)
	assert.Empty(t, inner)
}

func TestParseCiphertextWrongStartByte(t *testing.T) {
	framed, err := FrameCiphertext([]byte("x"), 7, TinkPrefixType)
	require.NoError(t, err)

	_, _, _, err = ParseCiphertext(framed, LegacyPrefixType)
	assert.True(t, IsMalformedCiphertext(err))
}

func TestFrameCiphertextDoesNotAliasInput(t *testing.T) {
	inner := []byte{1, 2, 3}
	framed, err := FrameCiphertext(inner, 9, TinkPrefixType)
	require.NoError(t, err)
	framed[NonRawPrefixSize] = 0xFF
	assert.Equal(t, byte(1), inner[0])
}
