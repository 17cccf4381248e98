package formats

import "google.golang.org/protobuf/encoding/protowire"

// AESGCMHKDFStreamingParams carries the streaming AEAD parameters: the
// ciphertext segment size, the size of the per-stream derived AES key and
// the HKDF hash used to derive it.
type AESGCMHKDFStreamingParams struct {
	CiphertextSegmentSize uint32   // field 1
	DerivedKeySize        uint32   // field 2
	HKDFHashType          HashType // field 3
}

// Marshal returns the canonical byte encoding of the params.
func (p *AESGCMHKDFStreamingParams) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, p.CiphertextSegmentSize)
	b = appendUint32(b, 2, p.DerivedKeySize)
	b = appendUint32(b, 3, uint32(p.HKDFHashType))
	return b
}

func parseAESGCMHKDFStreamingParams(data []byte) (*AESGCMHKDFStreamingParams, error) {
	p := &AESGCMHKDFStreamingParams{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeUint32(b, &p.CiphertextSegmentSize)
		case num == 2 && typ == protowire.VarintType:
			return consumeUint32(b, &p.DerivedKeySize)
		case num == 3 && typ == protowire.VarintType:
			var v uint32
			n, err := consumeUint32(b, &v)
			p.HKDFHashType = HashType(v)
			return n, err
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AESGCMHKDFStreamingKeyFormat describes how to generate a streaming AEAD
// key.
type AESGCMHKDFStreamingKeyFormat struct {
	Params  *AESGCMHKDFStreamingParams // field 1
	KeySize uint32                     // field 2
	Version uint32                     // field 3
}

// Marshal returns the canonical byte encoding of the format.
func (f *AESGCMHKDFStreamingKeyFormat) Marshal() []byte {
	var b []byte
	if f.Params != nil {
		b = appendMessage(b, 1, f.Params.Marshal())
	}
	b = appendUint32(b, 2, f.KeySize)
	b = appendUint32(b, 3, f.Version)
	return b
}

// ParseAESGCMHKDFStreamingKeyFormat decodes an AESGCMHKDFStreamingKeyFormat.
func ParseAESGCMHKDFStreamingKeyFormat(data []byte) (*AESGCMHKDFStreamingKeyFormat, error) {
	f := &AESGCMHKDFStreamingKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if f.Params, err = parseAESGCMHKDFStreamingParams(raw); err != nil {
				return 0, err
			}
			return n, nil
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

// AESGCMHKDFStreamingKey is materialized streaming AEAD key material.
type AESGCMHKDFStreamingKey struct {
	Version  uint32                     // field 1
	Params   *AESGCMHKDFStreamingParams // field 2
	KeyValue []byte                     // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *AESGCMHKDFStreamingKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	if k.Params != nil {
		b = appendMessage(b, 2, k.Params.Marshal())
	}
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseAESGCMHKDFStreamingKey decodes an AESGCMHKDFStreamingKey.
func ParseAESGCMHKDFStreamingKey(data []byte) (*AESGCMHKDFStreamingKey, error) {
	k := &AESGCMHKDFStreamingKey{}
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
			if k.Params, err = parseAESGCMHKDFStreamingParams(raw); err != nil {
				return 0, err
			}
			return n, nil
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
