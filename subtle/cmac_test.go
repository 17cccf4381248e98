package subtle

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// RFC 4493 test vectors for AES-128-CMAC.
func TestCMACRFC4493Vectors(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	msg := mustHex(t, "6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411e5fbc1191a0a52eff69f2445df4f9b17ad2b417be66c3710")

	tests := []struct {
		name string
		msg  []byte
		want string
	}{
		{"empty", nil, "bb1d6929e95937287fa37d129b756746"},
		{"one block", msg[:16], "070a16b46b4d4144f79bdd9dd04a287c"},
		{"40 bytes", msg[:40], "dfa66747de9ae63030ca32611497c827"},
		{"four blocks", msg, "51f0bebf7e3b9d92fc49741779363cfe"},
	}

	mac, err := newCMAC(key)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mac.sum(tt.msg)
			assert.Equal(t, mustHex(t, tt.want), got[:])
		})
	}
}

func TestCMACRejectsBadKeySize(t *testing.T) {
	_, err := newCMAC(make([]byte, 10))
	assert.Error(t, err)
}
