package formats

import "google.golang.org/protobuf/encoding/protowire"

// AESCTRHMACAEADKeyFormat composes the formats of the two sub-keys of the
// AES-CTR-HMAC AEAD construction.
type AESCTRHMACAEADKeyFormat struct {
	AESCTRKeyFormat *AESCTRKeyFormat // field 1
	HMACKeyFormat   *HMACKeyFormat   // field 2
}

// Marshal returns the canonical byte encoding of the format.
func (f *AESCTRHMACAEADKeyFormat) Marshal() []byte {
	var b []byte
	if f.AESCTRKeyFormat != nil {
		b = appendMessage(b, 1, f.AESCTRKeyFormat.Marshal())
	}
	if f.HMACKeyFormat != nil {
		b = appendMessage(b, 2, f.HMACKeyFormat.Marshal())
	}
	return b
}

// ParseAESCTRHMACAEADKeyFormat decodes an AESCTRHMACAEADKeyFormat.
func ParseAESCTRHMACAEADKeyFormat(data []byte) (*AESCTRHMACAEADKeyFormat, error) {
	f := &AESCTRHMACAEADKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if f.AESCTRKeyFormat, err = ParseAESCTRKeyFormat(raw); err != nil {
				return 0, err
			}
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if f.HMACKeyFormat, err = ParseHMACKeyFormat(raw); err != nil {
				return 0, err
			}
			return n, nil
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// AESCTRHMACAEADKey holds the two sub-keys of the AES-CTR-HMAC AEAD
// construction.
type AESCTRHMACAEADKey struct {
	Version   uint32     // field 1
	AESCTRKey *AESCTRKey // field 2
	HMACKey   *HMACKey   // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *AESCTRHMACAEADKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	if k.AESCTRKey != nil {
		b = appendMessage(b, 2, k.AESCTRKey.Marshal())
	}
	if k.HMACKey != nil {
		b = appendMessage(b, 3, k.HMACKey.Marshal())
	}
	return b
}

// ParseAESCTRHMACAEADKey decodes an AESCTRHMACAEADKey.
func ParseAESCTRHMACAEADKey(data []byte) (*AESCTRHMACAEADKey, error) {
	k := &AESCTRHMACAEADKey{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeUint32(b, &k.Version)
		case num == 2 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if k.AESCTRKey, err = ParseAESCTRKey(raw); err != nil {
				return 0, err
			}
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if k.HMACKey, err = ParseHMACKey(raw); err != nil {
				return 0, err
			}
			return n, nil
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return k, nil
}
