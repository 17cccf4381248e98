package aead

import (
	"fmt"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/subtle"
)

// AESGCMSIVKeyManager generates and validates AES-GCM-SIV keys and builds
// AEAD primitives from them. It is stateless and safe for concurrent use.
type AESGCMSIVKeyManager struct{}

var _ tink.KeyManager = (*AESGCMSIVKeyManager)(nil)

// TypeURL returns the key type this manager understands.
func (km *AESGCMSIVKeyManager) TypeURL() string { return AESGCMSIVTypeURL }

// Version returns the highest supported key version.
func (km *AESGCMSIVKeyManager) Version() uint32 { return 0 }

// ValidateKeyFormat checks the requested key size and format version.
func (km *AESGCMSIVKeyManager) ValidateKeyFormat(format *formats.AESGCMSIVKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: key format is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(format.Version, km.Version()); err != nil {
		return err
	}
	return subtle.ValidateAESKeySize(format.KeySize)
}

// ValidateKey checks materialized key bytes and version.
func (km *AESGCMSIVKeyManager) ValidateKey(key *formats.AESGCMSIVKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(key.Version, km.Version()); err != nil {
		return err
	}
	return subtle.ValidateAESKeySize(uint32(len(key.KeyValue)))
}

// NewKey generates a fresh key for a validated format.
func (km *AESGCMSIVKeyManager) NewKey(format *formats.AESGCMSIVKeyFormat) (*formats.AESGCMSIVKey, error) {
	if err := km.ValidateKeyFormat(format); err != nil {
		return nil, err
	}
	keyValue, err := subtle.RandomBytes(format.KeySize)
	if err != nil {
		return nil, err
	}
	return &formats.AESGCMSIVKey{Version: km.Version(), KeyValue: keyValue}, nil
}

// NewKeyData implements tink.KeyManager.
func (km *AESGCMSIVKeyManager) NewKeyData(serializedFormat []byte) (*tink.KeyData, error) {
	format, err := formats.ParseAESGCMSIVKeyFormat(serializedFormat)
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

// Primitive builds an AES-GCM-SIV AEAD from validated serialized key
// material.
func (km *AESGCMSIVKeyManager) Primitive(serializedKey []byte) (any, error) {
	key, err := formats.ParseAESGCMSIVKey(serializedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	if err := km.ValidateKey(key); err != nil {
		return nil, err
	}
	return subtle.NewAESGCMSIV(key.KeyValue)
}
