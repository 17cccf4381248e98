package aead

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/subtle"
)

// AESCTRHMACAEADKeyManager generates and validates composed AES-CTR plus
// HMAC keys and builds encrypt-then-MAC AEAD primitives from them. It is
// stateless and safe for concurrent use.
type AESCTRHMACAEADKeyManager struct{}

var _ tink.KeyManager = (*AESCTRHMACAEADKeyManager)(nil)

// TypeURL returns the key type this manager understands.
func (km *AESCTRHMACAEADKeyManager) TypeURL() string { return AESCTRHMACAEADTypeURL }

// Version returns the highest supported key version.
func (km *AESCTRHMACAEADKeyManager) Version() uint32 { return 0 }

const minHMACKeySize = 16

func maxTagSize(hash formats.HashType) (uint32, error) {
	switch hash {
	case formats.SHA1:
		return sha1.Size, nil
	case formats.SHA256:
		return sha256.Size, nil
	case formats.SHA512:
		return sha512.Size, nil
	default:
		return 0, fmt.Errorf("%w: unsupported hash type %s", tink.ErrInvalidArgument, hash)
	}
}

func validateAESCTRKeyFormat(format *formats.AESCTRKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: missing AES-CTR key format", tink.ErrInvalidArgument)
	}
	if err := subtle.ValidateAESKeySize(format.KeySize); err != nil {
		return err
	}
	if format.Params == nil || format.Params.IVSize < subtle.AESCTRMinIVSize || format.Params.IVSize > 16 {
		return fmt.Errorf("%w: invalid CTR IV size, want 12..16", tink.ErrInvalidArgument)
	}
	return nil
}

func validateHMACKeyFormat(format *formats.HMACKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: missing HMAC key format", tink.ErrInvalidArgument)
	}
	if format.KeySize < minHMACKeySize {
		return fmt.Errorf("%w: HMAC key size %d too small, want at least %d", tink.ErrInvalidArgument, format.KeySize, minHMACKeySize)
	}
	if format.Params == nil {
		return fmt.Errorf("%w: missing HMAC params", tink.ErrInvalidArgument)
	}
	max, err := maxTagSize(format.Params.Hash)
	if err != nil {
		return err
	}
	if format.Params.TagSize < 10 || format.Params.TagSize > max {
		return fmt.Errorf("%w: invalid HMAC tag size %d for %s", tink.ErrInvalidArgument, format.Params.TagSize, format.Params.Hash)
	}
	return nil
}

// ValidateKeyFormat checks both nested sub-key formats.
func (km *AESCTRHMACAEADKeyManager) ValidateKeyFormat(format *formats.AESCTRHMACAEADKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: key format is nil", tink.ErrInvalidArgument)
	}
	if err := validateAESCTRKeyFormat(format.AESCTRKeyFormat); err != nil {
		return err
	}
	return validateHMACKeyFormat(format.HMACKeyFormat)
}

// ValidateKey checks both sub-keys and every version involved.
func (km *AESCTRHMACAEADKeyManager) ValidateKey(key *formats.AESCTRHMACAEADKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(key.Version, km.Version()); err != nil {
		return err
	}
	if key.AESCTRKey == nil || key.HMACKey == nil {
		return fmt.Errorf("%w: missing sub-key", tink.ErrInvalidArgument)
	}
	if err := validateVersion(key.AESCTRKey.Version, km.Version()); err != nil {
		return err
	}
	if err := validateVersion(key.HMACKey.Version, km.Version()); err != nil {
		return err
	}
	if err := subtle.ValidateAESKeySize(uint32(len(key.AESCTRKey.KeyValue))); err != nil {
		return err
	}
	if key.AESCTRKey.Params == nil || key.AESCTRKey.Params.IVSize < subtle.AESCTRMinIVSize || key.AESCTRKey.Params.IVSize > 16 {
		return fmt.Errorf("%w: invalid CTR IV size, want 12..16", tink.ErrInvalidArgument)
	}
	if uint32(len(key.HMACKey.KeyValue)) < minHMACKeySize {
		return fmt.Errorf("%w: HMAC key too small, want at least %d bytes", tink.ErrInvalidArgument, minHMACKeySize)
	}
	if key.HMACKey.Params == nil {
		return fmt.Errorf("%w: missing HMAC params", tink.ErrInvalidArgument)
	}
	max, err := maxTagSize(key.HMACKey.Params.Hash)
	if err != nil {
		return err
	}
	if key.HMACKey.Params.TagSize < 10 || key.HMACKey.Params.TagSize > max {
		return fmt.Errorf("%w: invalid HMAC tag size %d for %s", tink.ErrInvalidArgument, key.HMACKey.Params.TagSize, key.HMACKey.Params.Hash)
	}
	return nil
}

// NewKey generates fresh sub-keys for a validated format.
func (km *AESCTRHMACAEADKeyManager) NewKey(format *formats.AESCTRHMACAEADKeyFormat) (*formats.AESCTRHMACAEADKey, error) {
	if err := km.ValidateKeyFormat(format); err != nil {
		return nil, err
	}
	aesKey, err := subtle.RandomBytes(format.AESCTRKeyFormat.KeySize)
	if err != nil {
		return nil, err
	}
	hmacKey, err := subtle.RandomBytes(format.HMACKeyFormat.KeySize)
	if err != nil {
		return nil, err
	}
	return &formats.AESCTRHMACAEADKey{
		Version: km.Version(),
		AESCTRKey: &formats.AESCTRKey{
			Version:  km.Version(),
			Params:   &formats.AESCTRParams{IVSize: format.AESCTRKeyFormat.Params.IVSize},
			KeyValue: aesKey,
		},
		HMACKey: &formats.HMACKey{
			Version: km.Version(),
			Params: &formats.HMACParams{
				Hash:    format.HMACKeyFormat.Params.Hash,
				TagSize: format.HMACKeyFormat.Params.TagSize,
			},
			KeyValue: hmacKey,
		},
	}, nil
}

// NewKeyData implements tink.KeyManager.
func (km *AESCTRHMACAEADKeyManager) NewKeyData(serializedFormat []byte) (*tink.KeyData, error) {
	format, err := formats.ParseAESCTRHMACAEADKeyFormat(serializedFormat)
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

// Primitive builds the encrypt-then-MAC AEAD from validated serialized key
// material.
func (km *AESCTRHMACAEADKeyManager) Primitive(serializedKey []byte) (any, error) {
	key, err := formats.ParseAESCTRHMACAEADKey(serializedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	if err := km.ValidateKey(key); err != nil {
		return nil, err
	}
	return subtle.NewAESCTRHMAC(
		key.AESCTRKey.KeyValue,
		int(key.AESCTRKey.Params.IVSize),
		key.HMACKey.Params.Hash,
		key.HMACKey.KeyValue,
		int(key.HMACKey.Params.TagSize),
	)
}
