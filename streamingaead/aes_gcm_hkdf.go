package streamingaead

import (
	"fmt"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/streaming"
	"github.com/tahasabih/tink/subtle"
)

// AESGCMHKDFStreamingKeyManager generates and validates AES-GCM-HKDF
// streaming keys. It is stateless and safe for concurrent use.
type AESGCMHKDFStreamingKeyManager struct{}

var _ tink.KeyManager = (*AESGCMHKDFStreamingKeyManager)(nil)

// TypeURL returns the key type this manager understands.
func (km *AESGCMHKDFStreamingKeyManager) TypeURL() string { return AESGCMHKDFStreamingTypeURL }

// Version returns the highest supported key version.
func (km *AESGCMHKDFStreamingKeyManager) Version() uint32 { return 0 }

func validateStreamingParams(params *formats.AESGCMHKDFStreamingParams, keySize uint32) error {
	if params == nil {
		return fmt.Errorf("%w: missing streaming params", tink.ErrInvalidArgument)
	}
	if err := subtle.ValidateAESKeySize(params.DerivedKeySize); err != nil {
		return err
	}
	if keySize < 16 || keySize < params.DerivedKeySize {
		return fmt.Errorf("%w: key size %d too small for derived key size %d", tink.ErrInvalidArgument, keySize, params.DerivedKeySize)
	}
	switch params.HKDFHashType {
	case formats.SHA1, formats.SHA256, formats.SHA512:
	default:
		return fmt.Errorf("%w: unsupported HKDF hash type %s", tink.ErrInvalidArgument, params.HKDFHashType)
	}
	headerLen := 1 + params.DerivedKeySize + streaming.NoncePrefixSize
	if params.CiphertextSegmentSize <= headerLen+streaming.SegmentTagSize {
		return fmt.Errorf("%w: ciphertext segment size %d too small", tink.ErrInvalidArgument, params.CiphertextSegmentSize)
	}
	return nil
}

// ValidateKeyFormat checks the format version, key sizes, hash and segment
// size.
func (km *AESGCMHKDFStreamingKeyManager) ValidateKeyFormat(format *formats.AESGCMHKDFStreamingKeyFormat) error {
	if format == nil {
		return fmt.Errorf("%w: key format is nil", tink.ErrInvalidArgument)
	}
	if format.Version > km.Version() {
		return fmt.Errorf("%w: key format version %d, supported up to %d", tink.ErrUnsupportedVersion, format.Version, km.Version())
	}
	return validateStreamingParams(format.Params, format.KeySize)
}

// ValidateKey checks the key version, key material and params.
func (km *AESGCMHKDFStreamingKeyManager) ValidateKey(key *formats.AESGCMHKDFStreamingKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", tink.ErrInvalidArgument)
	}
	if key.Version > km.Version() {
		return fmt.Errorf("%w: key version %d, supported up to %d", tink.ErrUnsupportedVersion, key.Version, km.Version())
	}
	return validateStreamingParams(key.Params, uint32(len(key.KeyValue)))
}

// NewKey generates fresh key material for a validated format.
func (km *AESGCMHKDFStreamingKeyManager) NewKey(format *formats.AESGCMHKDFStreamingKeyFormat) (*formats.AESGCMHKDFStreamingKey, error) {
	if err := km.ValidateKeyFormat(format); err != nil {
		return nil, err
	}
	keyValue, err := subtle.RandomBytes(format.KeySize)
	if err != nil {
		return nil, err
	}
	return &formats.AESGCMHKDFStreamingKey{
		Version: km.Version(),
		Params: &formats.AESGCMHKDFStreamingParams{
			CiphertextSegmentSize: format.Params.CiphertextSegmentSize,
			DerivedKeySize:        format.Params.DerivedKeySize,
			HKDFHashType:          format.Params.HKDFHashType,
		},
		KeyValue: keyValue,
	}, nil
}

// NewKeyData implements tink.KeyManager.
func (km *AESGCMHKDFStreamingKeyManager) NewKeyData(serializedFormat []byte) (*tink.KeyData, error) {
	format, err := formats.ParseAESGCMHKDFStreamingKeyFormat(serializedFormat)
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

// Primitive builds a streaming AEAD from validated serialized key material.
func (km *AESGCMHKDFStreamingKeyManager) Primitive(serializedKey []byte) (any, error) {
	key, err := formats.ParseAESGCMHKDFStreamingKey(serializedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tink.ErrInvalidArgument, err)
	}
	if err := km.ValidateKey(key); err != nil {
		return nil, err
	}
	return streaming.NewAESGCMHKDF(
		key.KeyValue,
		key.Params.HKDFHashType,
		int(key.Params.DerivedKeySize),
		int(key.Params.CiphertextSegmentSize),
	)
}

// NewStreamingAEAD builds a streaming AEAD primitive from keyData through
// the registry. Streaming keys always use the RAW output prefix; the stream
// header makes its own framing.
func NewStreamingAEAD(reg *tink.Registry, keyData *tink.KeyData) (tink.StreamingAEAD, error) {
	p, err := reg.Primitive(keyData)
	if err != nil {
		return nil, err
	}
	primitive, ok := p.(tink.StreamingAEAD)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a streaming AEAD key type", tink.ErrConfiguration, keyData.TypeURL)
	}
	return primitive, nil
}

// AES128GCMHKDF4KBKeyTemplate creates a streaming template with a 16-byte
// key, HKDF-SHA256 and 4 KiB segments.
func AES128GCMHKDF4KBKeyTemplate() *tink.KeyTemplate {
	return streamingTemplate(16)
}

// AES256GCMHKDF4KBKeyTemplate creates a streaming template with a 32-byte
// key, HKDF-SHA256 and 4 KiB segments.
func AES256GCMHKDF4KBKeyTemplate() *tink.KeyTemplate {
	return streamingTemplate(32)
}

func streamingTemplate(keySize uint32) *tink.KeyTemplate {
	format := &formats.AESGCMHKDFStreamingKeyFormat{
		Params: &formats.AESGCMHKDFStreamingParams{
			CiphertextSegmentSize: 4096,
			DerivedKeySize:        keySize,
			HKDFHashType:          formats.SHA256,
		},
		KeySize: keySize,
	}
	return &tink.KeyTemplate{
		TypeURL:          AESGCMHKDFStreamingTypeURL,
		Value:            format.Marshal(),
		OutputPrefixType: tink.RawPrefixType,
	}
}
