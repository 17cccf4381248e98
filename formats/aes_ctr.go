package formats

import "google.golang.org/protobuf/encoding/protowire"

// AESCTRParams carries the AES-CTR IV length.
type AESCTRParams struct {
	IVSize uint32 // field 1
}

// Marshal returns the canonical byte encoding of the params.
func (p *AESCTRParams) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, p.IVSize)
	return b
}

func parseAESCTRParams(data []byte) (*AESCTRParams, error) {
	p := &AESCTRParams{}
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

// AESCTRKeyFormat describes how to generate an AES-CTR key.
type AESCTRKeyFormat struct {
	Params  *AESCTRParams // field 1
	KeySize uint32        // field 2
}

// Marshal returns the canonical byte encoding of the format.
func (f *AESCTRKeyFormat) Marshal() []byte {
	var b []byte
	if f.Params != nil {
		b = appendMessage(b, 1, f.Params.Marshal())
	}
	b = appendUint32(b, 2, f.KeySize)
	return b
}

// ParseAESCTRKeyFormat decodes an AESCTRKeyFormat.
func ParseAESCTRKeyFormat(data []byte) (*AESCTRKeyFormat, error) {
	f := &AESCTRKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if f.Params, err = parseAESCTRParams(raw); err != nil {
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

// AESCTRKey is materialized AES-CTR key material.
type AESCTRKey struct {
	Version  uint32        // field 1
	Params   *AESCTRParams // field 2
	KeyValue []byte        // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *AESCTRKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	if k.Params != nil {
		b = appendMessage(b, 2, k.Params.Marshal())
	}
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseAESCTRKey decodes an AESCTRKey.
func ParseAESCTRKey(data []byte) (*AESCTRKey, error) {
	k := &AESCTRKey{}
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
			if k.Params, err = parseAESCTRParams(raw); err != nil {
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
