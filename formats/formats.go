// Package formats defines the key format and key messages for every
// supported key type, together with their canonical byte encoding.
//
// The encoding is protobuf wire format, produced and consumed with
// google.golang.org/protobuf/encoding/protowire. Field numbers match the
// google.crypto.tink proto definitions, so serialized formats and keys are
// interchangeable with other implementations. Zero-valued fields are
// omitted, as proto3 serializers do, which keeps equal configurations
// byte-identical.
//
// Messages in this package never validate themselves; validation rules live
// with the key managers.
package formats

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// appendUint32 appends a varint field when v is non-zero.
func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// appendBytes appends a length-delimited field when v is non-empty.
func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendMessage appends an embedded message field when msg is non-empty.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	return appendBytes(b, num, msg)
}

// fieldFunc consumes one field the message understands. It returns the
// number of bytes consumed, or -1 when the field is not recognized (the
// caller then skips it, matching protobuf unknown-field semantics).
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// walkFields drives a protowire parse loop over b.
func walkFields(b []byte, apply fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("formats: invalid field tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		m, err := apply(num, typ, b)
		if err != nil {
			return err
		}
		if m < 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("formats: invalid field value: %w", protowire.ParseError(m))
			}
		}
		b = b[m:]
	}
	return nil
}

// consumeUint32 consumes a varint field value.
func consumeUint32(b []byte, dst *uint32) (int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, fmt.Errorf("formats: invalid varint: %w", protowire.ParseError(n))
	}
	*dst = uint32(v)
	return n, nil
}

// consumeBytes consumes a length-delimited field value into a fresh copy.
func consumeBytes(b []byte, dst *[]byte) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, fmt.Errorf("formats: invalid bytes field: %w", protowire.ParseError(n))
	}
	*dst = append([]byte(nil), v...)
	return n, nil
}
