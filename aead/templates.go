package aead

import (
	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
)

// Pre-configured key templates. Each call returns a fresh template value,
// callers may mutate the result without affecting later calls.

// AES128GCMKeyTemplate creates an AES-GCM template with a 16-byte key and
// TINK output prefix.
func AES128GCMKeyTemplate() *tink.KeyTemplate {
	return aesGCMTemplate(16)
}

// AES256GCMKeyTemplate creates an AES-GCM template with a 32-byte key and
// TINK output prefix.
func AES256GCMKeyTemplate() *tink.KeyTemplate {
	return aesGCMTemplate(32)
}

func aesGCMTemplate(keySize uint32) *tink.KeyTemplate {
	format := &formats.AESGCMKeyFormat{KeySize: keySize}
	return &tink.KeyTemplate{
		TypeURL:          AESGCMTypeURL,
		Value:            format.Marshal(),
		OutputPrefixType: tink.TinkPrefixType,
	}
}

// AES128EAXKeyTemplate creates an AES-EAX template with a 16-byte key, a
// 16-byte IV and TINK output prefix.
func AES128EAXKeyTemplate() *tink.KeyTemplate {
	return aesEAXTemplate(16)
}

// AES256EAXKeyTemplate creates an AES-EAX template with a 32-byte key, a
// 16-byte IV and TINK output prefix.
func AES256EAXKeyTemplate() *tink.KeyTemplate {
	return aesEAXTemplate(32)
}

func aesEAXTemplate(keySize uint32) *tink.KeyTemplate {
	format := &formats.AESEAXKeyFormat{
		Params:  &formats.AESEAXParams{IVSize: 16},
		KeySize: keySize,
	}
	return &tink.KeyTemplate{
		TypeURL:          AESEAXTypeURL,
		Value:            format.Marshal(),
		OutputPrefixType: tink.TinkPrefixType,
	}
}

// AES128GCMSIVKeyTemplate creates an AES-GCM-SIV template with a 16-byte key
// and TINK output prefix.
func AES128GCMSIVKeyTemplate() *tink.KeyTemplate {
	return aesGCMSIVTemplate(16)
}

// AES256GCMSIVKeyTemplate creates an AES-GCM-SIV template with a 32-byte key
// and TINK output prefix.
func AES256GCMSIVKeyTemplate() *tink.KeyTemplate {
	return aesGCMSIVTemplate(32)
}

func aesGCMSIVTemplate(keySize uint32) *tink.KeyTemplate {
	format := &formats.AESGCMSIVKeyFormat{KeySize: keySize}
	return &tink.KeyTemplate{
		TypeURL:          AESGCMSIVTypeURL,
		Value:            format.Marshal(),
		OutputPrefixType: tink.TinkPrefixType,
	}
}

// AES128CTRHMACSHA256KeyTemplate creates an AES-CTR-HMAC template with a
// 16-byte AES key, a 16-byte IV, a 32-byte HMAC-SHA256 key, 16-byte tags and
// TINK output prefix.
func AES128CTRHMACSHA256KeyTemplate() *tink.KeyTemplate {
	return aesCTRHMACTemplate(16, 16, 32, 16)
}

// AES256CTRHMACSHA256KeyTemplate creates an AES-CTR-HMAC template with a
// 32-byte AES key, a 16-byte IV, a 32-byte HMAC-SHA256 key, 32-byte tags and
// TINK output prefix.
func AES256CTRHMACSHA256KeyTemplate() *tink.KeyTemplate {
	return aesCTRHMACTemplate(32, 16, 32, 32)
}

func aesCTRHMACTemplate(aesKeySize, ivSize, hmacKeySize, tagSize uint32) *tink.KeyTemplate {
	format := &formats.AESCTRHMACAEADKeyFormat{
		AESCTRKeyFormat: &formats.AESCTRKeyFormat{
			Params:  &formats.AESCTRParams{IVSize: ivSize},
			KeySize: aesKeySize,
		},
		HMACKeyFormat: &formats.HMACKeyFormat{
			Params: &formats.HMACParams{
				Hash:    formats.SHA256,
				TagSize: tagSize,
			},
			KeySize: hmacKeySize,
		},
	}
	return &tink.KeyTemplate{
		TypeURL:          AESCTRHMACAEADTypeURL,
		Value:            format.Marshal(),
		OutputPrefixType: tink.TinkPrefixType,
	}
}

// XChaCha20Poly1305KeyTemplate creates an XChaCha20-Poly1305 template with
// TINK output prefix. The key format carries no parameters.
func XChaCha20Poly1305KeyTemplate() *tink.KeyTemplate {
	format := &formats.XChaCha20Poly1305KeyFormat{}
	return &tink.KeyTemplate{
		TypeURL:          XChaCha20Poly1305TypeURL,
		Value:            format.Marshal(),
		OutputPrefixType: tink.TinkPrefixType,
	}
}
