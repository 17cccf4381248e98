// Package streamingaead provides key management for streaming
// authenticated encryption. It mirrors the aead package for payloads that
// are encrypted and decrypted incrementally through io.Writer and
// io.Reader.
package streamingaead

import (
	"github.com/tahasabih/tink"
)

// AESGCMHKDFStreamingTypeURL identifies serialized AES-GCM-HKDF streaming
// keys.
const AESGCMHKDFStreamingTypeURL = "type.googleapis.com/google.crypto.tink.AesGcmHkdfStreamingKey"

// RegisterKeyManagers registers every streaming key manager of this package
// with reg.
func RegisterKeyManagers(reg *tink.Registry) error {
	return reg.RegisterKeyManager(new(AESGCMHKDFStreamingKeyManager))
}
