package formats

import "google.golang.org/protobuf/encoding/protowire"

// HMACParams carries the HMAC hash choice and tag length.
type HMACParams struct {
	Hash    HashType // field 1
	TagSize uint32   // field 2
}

// Marshal returns the canonical byte encoding of the params.
func (p *HMACParams) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, uint32(p.Hash))
	b = appendUint32(b, 2, p.TagSize)
	return b
}

func parseHMACParams(data []byte) (*HMACParams, error) {
	p := &HMACParams{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v uint32
			n, err := consumeUint32(b, &v)
			p.Hash = HashType(v)
			return n, err
		case num == 2 && typ == protowire.VarintType:
			return consumeUint32(b, &p.TagSize)
		}
		return -1, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// HMACKeyFormat describes how to generate an HMAC key.
type HMACKeyFormat struct {
	Params  *HMACParams // field 1
	KeySize uint32      // field 2
	Version uint32      // field 3
}

// Marshal returns the canonical byte encoding of the format.
func (f *HMACKeyFormat) Marshal() []byte {
	var b []byte
	if f.Params != nil {
		b = appendMessage(b, 1, f.Params.Marshal())
	}
	b = appendUint32(b, 2, f.KeySize)
	b = appendUint32(b, 3, f.Version)
	return b
}

// ParseHMACKeyFormat decodes an HMACKeyFormat.
func ParseHMACKeyFormat(data []byte) (*HMACKeyFormat, error) {
	f := &HMACKeyFormat{}
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			var raw []byte
			n, err := consumeBytes(b, &raw)
			if err != nil {
				return 0, err
			}
			if f.Params, err = parseHMACParams(raw); err != nil {
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

// HMACKey is materialized HMAC key material.
type HMACKey struct {
	Version  uint32      // field 1
	Params   *HMACParams // field 2
	KeyValue []byte      // field 3
}

// Marshal returns the canonical byte encoding of the key.
func (k *HMACKey) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, k.Version)
	if k.Params != nil {
		b = appendMessage(b, 2, k.Params.Marshal())
	}
	b = appendBytes(b, 3, k.KeyValue)
	return b
}

// ParseHMACKey decodes an HMACKey.
func ParseHMACKey(data []byte) (*HMACKey, error) {
	k := &HMACKey{}
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
			if k.Params, err = parseHMACParams(raw); err != nil {
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
