// Package aead provides the AEAD key managers, their canonical key
// templates, and prefix-aware wrappers that bind ciphertexts to the key
// that produced them.
//
// Each key manager owns one algorithm and is registered in a tink.Registry
// under its type URL. Callers normally never construct keys directly; they
// pick a template, ask the registry for fresh key data, and build a
// primitive from it:
//
//	reg := tink.NewRegistry()
//	if err := aead.RegisterKeyManagers(reg); err != nil { ... }
//	keyData, err := reg.NewKeyData(*aead.AES256GCMKeyTemplate())
//	primitive, err := aead.NewWithKeyData(reg, keyData, keyID, tink.TinkPrefixType)
package aead

import (
	"fmt"

	"github.com/tahasabih/tink"
)

// Type URLs routing key data to the managers in this package.
const (
	AESEAXTypeURL            = "type.googleapis.com/google.crypto.tink.AesEaxKey"
	AESGCMTypeURL            = "type.googleapis.com/google.crypto.tink.AesGcmKey"
	AESGCMSIVTypeURL         = "type.googleapis.com/google.crypto.tink.AesGcmSivKey"
	AESCTRHMACAEADTypeURL    = "type.googleapis.com/google.crypto.tink.AesCtrHmacAeadKey"
	XChaCha20Poly1305TypeURL = "type.googleapis.com/google.crypto.tink.XChaCha20Poly1305Key"
)

// validateVersion rejects keys and formats from a newer format generation
// than the manager supports.
func validateVersion(version, maxSupported uint32) error {
	if version > maxSupported {
		return fmt.Errorf("%w: version %d, supported up to %d", tink.ErrUnsupportedVersion, version, maxSupported)
	}
	return nil
}

// RegisterKeyManagers registers every AEAD key manager in this package.
// It is meant to run once during application startup.
func RegisterKeyManagers(reg *tink.Registry) error {
	managers := []tink.KeyManager{
		new(AESEAXKeyManager),
		new(AESGCMKeyManager),
		new(AESGCMSIVKeyManager),
		new(AESCTRHMACAEADKeyManager),
		new(XChaCha20Poly1305KeyManager),
	}
	for _, km := range managers {
		if err := reg.RegisterKeyManager(km); err != nil {
			return err
		}
	}
	return nil
}
