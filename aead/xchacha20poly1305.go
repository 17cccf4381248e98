package aead

import (
	"fmt"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/subtle"
)

// XChaCha20Poly1305KeyManager generates and validates XChaCha20-Poly1305
// keys. The key format carries no parameters, keys are always 32 bytes.
type XChaCha20Poly1305KeyManager struct{}

var _ tink.KeyManager = (*XChaCha20Poly1305KeyManager)(nil)

// TypeURL returns the key type this manager understands.
func (km *XChaCha20Poly1305KeyManager) TypeURL() string { return XChaCha20Poly1305TypeURL }

// Version returns the highest supported key version.
func (km *XChaCha20Poly1305KeyManager) Version() uint32 { return 0 }

// ValidateKeyFormat checks the format version.
func (km *XChaCha20Poly1305KeyManager) ValidateKeyFormat(format *formats.XChaCha20Poly1305KeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: key format is nil", tink.ErrInvalidArgument)
	}
	return validateVersion(format.Version, km.Version())
}

// ValidateKey checks the key version and key length.
func (km *XChaCha20Poly1305KeyManager) ValidateKey(key *formats.XChaCha20Poly1305Key) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", tink.ErrInvalidArgument)
	}
	if err := validateVersion(key.Version, km.Version()); err != nil {
		return err
	}
	if len(key.KeyValue) != subtle.XChaCha20Poly1305KeySize {
		return fmt.Errorf("%w: invalid XChaCha20-Poly1305 key size %d, want %d", tink.ErrInvalidArgument, len(key.KeyValue), subtle.XChaCha20Poly1305KeySize)
	}
	return nil
}

// NewKey generates a fresh 32-byte key.
func (km *XChaCha20Poly1305KeyManager) NewKey(format *formats.XChaCha20Poly1305KeyFormat) (*formats.XChaCha20Poly1305Key, error) {
	if err := km.ValidateKeyFormat(format); err != nil {
		return nil, err
	}
	keyValue, err := subtle.RandomBytes(subtle.XChaCha20Poly1305KeySize)
	if err != nil {
		return nil, err
	}
	return &formats.XChaCha20Poly1305Key{
		Version:  km.Version(),
		KeyValue: keyValue,
	}, nil
}

// NewKeyData implements tink.KeyManager.
func (km *XChaCha20Poly1305KeyManager) NewKeyData(serializedFormat []byte) (*tink.KeyData, error) {
	format, err := formats.ParseXChaCha20Poly1305KeyFormat(serializedFormat)
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

// Primitive builds an XChaCha20-Poly1305 AEAD from validated serialized key
// material.
func (km *XChaCha20Poly1305KeyManager) Primitive(serializedKey []byte) (any, error) {
	key, err := formats.ParseXChaCha20Poly1305Key(serializedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	if err := km.ValidateKey(key); err != nil {
		return nil, err
	}
	return subtle.NewXChaCha20Poly1305(key.KeyValue)
}
