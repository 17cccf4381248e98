package aead

import (
	"fmt"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/subtle"
)

// AESEAXKeyManager generates and validates AES-EAX keys and builds AEAD
// primitives from them. It is stateless and safe for concurrent use.
type AESEAXKeyManager struct{}

var _ tink.KeyManager = (*AESEAXKeyManager)(nil)

// TypeURL returns the key type this manager understands.
func (km *AESEAXKeyManager) TypeURL() string { return AESEAXTypeURL }

// Version returns the highest supported key version.
func (km *AESEAXKeyManager) Version() uint32 { return 0 }

func validateEAXParams(params *formats.AESEAXParams) error {
	if params == nil {
		return fmt.Errorf("%w: missing EAX params", tink.ErrInvalidArgument)
	}
	if params.IVSize < subtle.AESEAXMinIVSize || params.IVSize > subtle.AESEAXMaxIVSize {
		return fmt.Errorf("%w: invalid EAX IV size %d bytes, want 12..16", tink.ErrInvalidArgument, params.IVSize)
	}
	return nil
}

// ValidateKeyFormat checks the requested key size and IV size.
func (km *AESEAXKeyManager) ValidateKeyFormat(format *formats.AESEAXKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: key format is nil", tink.ErrInvalidArgument)
	}
	if err := subtle.ValidateAESKeySize(format.KeySize); err != nil {
		return err
	}
	return validateEAXParams(format.Params)
}

// ValidateKey checks materialized key bytes, params and version.
func (km *AESEAXKeyManager) ValidateKey(key *formats.AESEAXKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(key.Version, km.Version()); err != nil {
		return err
	}
	if err := subtle.ValidateAESKeySize(uint32(len(key.KeyValue))); err != nil {
		return err
	}
	return validateEAXParams(key.Params)
}

// NewKey generates a fresh key for a validated format.
func (km *AESEAXKeyManager) NewKey(format *formats.AESEAXKeyFormat) (*formats.AESEAXKey, error) {
	if err := km.ValidateKeyFormat(format); err != nil {
		return nil, err
	}
	keyValue, err := subtle.RandomBytes(format.KeySize)
	if err != nil {
		return nil, err
	}
	return &formats.AESEAXKey{
		Version:  km.Version(),
		Params:   &formats.AESEAXParams{IVSize: format.Params.IVSize},
		KeyValue: keyValue,
	}, nil
}

// NewKeyData implements tink.KeyManager.
func (km *AESEAXKeyManager) NewKeyData(serializedFormat []byte) (*tink.KeyData, error) {
	format, err := formats.ParseAESEAXKeyFormat(serializedFormat)
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

// Primitive builds an AES-EAX AEAD from validated serialized key material.
func (km *AESEAXKeyManager) Primitive(serializedKey []byte) (any, error) {
	key, err := formats.ParseAESEAXKey(serializedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	if err := km.ValidateKey(key); err != nil {
		return nil, err
	}
	return subtle.NewAESEAX(key.KeyValue, int(key.Params.IVSize))
}
