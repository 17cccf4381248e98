package aead

import (
	"fmt"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/subtle"
)

// AESGCMKeyManager generates and validates AES-GCM keys and builds AEAD
// primitives from them. It is stateless and safe for concurrent use.
type AESGCMKeyManager struct{}

var _ tink.KeyManager = (*AESGCMKeyManager)(nil)

// TypeURL returns the key type this manager understands.
func (km *AESGCMKeyManager) TypeURL() string { return AESGCMTypeURL }

// Version returns the highest supported key version.
func (km *AESGCMKeyManager) Version() uint32 { return 0 }

// ValidateKeyFormat checks the requested key size against the AES
// allow-list and the format version against the manager's version.
func (km *AESGCMKeyManager) ValidateKeyFormat(format *formats.AESGCMKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: key format is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(format.Version, km.Version()); err != nil {
		return err
	}
	return subtle.ValidateAESKeySize(format.KeySize)
}

// ValidateKey checks materialized key bytes and version.
func (km *AESGCMKeyManager) ValidateKey(key *formats.AESGCMKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(key.Version, km.Version()); err != nil {
		return err
	}
	return subtle.ValidateAESKeySize(uint32(len(key.KeyValue)))
}

// NewKey generates a fresh key for a validated format. No randomness is
// drawn when validation fails.
func (km *AESGCMKeyManager) NewKey(format *formats.AESGCMKeyFormat) (*formats.AESGCMKey, error) {
	if err := km.ValidateKeyFormat(format); err != nil {
		return nil, err
	}
	keyValue, err := subtle.RandomBytes(format.KeySize)
	if err != nil {
		return nil, err
	}
	return &formats.AESGCMKey{Version: km.Version(), KeyValue: keyValue}, nil
}

// NewKeyData implements tink.KeyManager.
func (km *AESGCMKeyManager) NewKeyData(serializedFormat []byte) (*tink.KeyData, error) {
	format, err := formats.ParseAESGCMKeyFormat(serializedFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	key, err := km.NewKey(format)
	if err != nil {
		return nil, err
	}
	return &tink.KeyData{
		TypeURL:         km.TypeURL(),
		Value:           key.Marshal(),
		KeyMaterialType: tink.KeyMaterialSymmetric,
	}, nil
}

// Primitive builds an AES-GCM AEAD from validated serialized key material.
func (km *AESGCMKeyManager) Primitive(serializedKey []byte) (any, error) {
	key, err := formats.ParseAESGCMKey(serializedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	if err := km.ValidateKey(key); err != nil {
		return nil, err
	}
	return subtle.NewAESGCM(key.KeyValue)
}
