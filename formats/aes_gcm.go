package formats

import "google.golang.org/protobuf/encoding/protowire"

// AESGCMKeyFormat describes how to generate an AES-GCM key.
type AESGCMKeyFormat struct {
	KeySize uint32 // field 2
	Version uint32 // field 3
}

// Marshal returns the canonical byte encoding of the format.
func (f *AESGCMKeyFormat) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 2, f.KeySize)
	b = appendUint32(b, 3, f.Version)
	return b
}

// ParseAESGCMKeyFormat decodes an AESGCMKeyFormat.
func ParseAESGCMKeyFormat(data []byte) (*AESGCMKeyFormat, error) {
	f := &AESGCMKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 2 && typ == protowire.VarintType:
			return consumeUint32(b, &f.KeySize)
		case num == 3 && typ == protowire.VarintType:
			return consumeUint32(b, &f.Version)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// AESGCMKey is materialized AES-GCM key material.
type AESGCMKey struct {
	Version  uint32 // field 1
	KeyValue []byte // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *AESGCMKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseAESGCMKey decodes an AESGCMKey.
func ParseAESGCMKey(data []byte) (*AESGCMKey, error) {
	k := &AESGCMKey{}
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
