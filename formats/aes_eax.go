package formats

import "google.golang.org/protobuf/encoding/protowire"

// AESEAXParams carries the AES-EAX IV length.
type AESEAXParams struct {
	IVSize uint32 // field 1
}

// Marshal returns the canonical byte encoding of the params.
func (p *AESEAXParams) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, p.IVSize)
	return b
}

func parseAESEAXParams(data []byte) (*AESEAXParams, error) {
	p := &AESEAXParams{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			return consumeUint32(b, &p.IVSize)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AESEAXKeyFormat describes how to generate an AES-EAX key.
type AESEAXKeyFormat struct {
	Params  *AESEAXParams // field 1
	KeySize uint32        // field 2
}

// Marshal returns the canonical byte encoding of the format.
func (f *AESEAXKeyFormat) Marshal() []byte {
	var b []byte
	if f.Params != nil {
		b = appendMessage(b, 1, f.Params.Marshal())
	}
	b = appendUint32(b, 2, f.KeySize)
	return b
}

// ParseAESEAXKeyFormat decodes an AESEAXKeyFormat.
func ParseAESEAXKeyFormat(data []byte) (*AESEAXKeyFormat, error) {
	f := &AESEAXKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if f.Params, err = parseAESEAXParams(raw); err != nil {
				return 0, err
			}
			return n, nil
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

// AESEAXKey is materialized AES-EAX key material.
type AESEAXKey struct {
	Version  uint32        // field 1
	Params   *AESEAXParams // field 2
	KeyValue []byte        // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *AESEAXKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	if k.Params != nil {
		b = appendMessage(b, 2, k.Params.Marshal())
	}
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseAESEAXKey decodes an AESEAXKey.
func ParseAESEAXKey(data []byte) (*AESEAXKey, error) {
	k := &AESEAXKey{}
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
			if k.Params, err = parseAESEAXParams(raw); err != nil {
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
