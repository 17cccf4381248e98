package formats

import "google.golang.org/protobuf/encoding/protowire"

// XChaCha20Poly1305KeyFormat describes how to generate an
// XChaCha20-Poly1305 key. The key size is fixed by the algorithm, so the
// format carries only a version.
type XChaCha20Poly1305KeyFormat struct {
	Version uint32 // field 1
}

// Marshal returns the canonical byte encoding of the format.
func (f *XChaCha20Poly1305KeyFormat) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, f.Version)
	return b
}

// ParseXChaCha20Poly1305KeyFormat decodes an XChaCha20Poly1305KeyFormat.
func ParseXChaCha20Poly1305KeyFormat(data []byte) (*XChaCha20Poly1305KeyFormat, error) {
	f := &XChaCha20Poly1305KeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			return consumeUint32(b, &f.Version)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// XChaCha20Poly1305Key is materialized XChaCha20-Poly1305 key material.
type XChaCha20Poly1305Key struct {
	Version  uint32 // field 1
	KeyValue []byte // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *XChaCha20Poly1305Key) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseXChaCha20Poly1305Key decodes an XChaCha20Poly1305Key.
func ParseXChaCha20Poly1305Key(data []byte) (*XChaCha20Poly1305Key, error) {
	k := &XChaCha20Poly1305Key{}
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
