package formats

import "google.golang.org/protobuf/encoding/protowire"

// AESGCMSIVKeyFormat describes how to generate an AES-GCM-SIV key.
type AESGCMSIVKeyFormat struct {
	Version uint32 // field 1
	KeySize uint32 // field 2
}

// Marshal returns the canonical byte encoding of the format.
func (f *AESGCMSIVKeyFormat) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, f.Version)
	b = appendUint32(b, 2, f.KeySize)
	return b
}

// ParseAESGCMSIVKeyFormat decodes an AESGCMSIVKeyFormat.
func ParseAESGCMSIVKeyFormat(data []byte) (*AESGCMSIVKeyFormat, error) {
	f := &AESGCMSIVKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeUint32(b, &f.Version)
		case num == 2 && typ == protowire.VarintType:
			return consumeUint32(b, &f.KeySize)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// AESGCMSIVKey is materialized AES-GCM-SIV key material.
type AESGCMSIVKey struct {
	Version  uint32 // field 1
	KeyValue []byte // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *AESGCMSIVKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseAESGCMSIVKey decodes an AESGCMSIVKey.
func ParseAESGCMSIVKey(data []byte) (*AESGCMSIVKey, error) {
	k := &AESGCMSIVKey{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeUint32(b, &k.Version)
		case num == 3 && typ == protowire.BytesType:
			return consumeBytes(b, &k.KeyValue)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return k, nil
}
