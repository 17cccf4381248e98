// Package tink is a cryptographic-agility layer for authenticated
// encryption. Callers select an algorithm by key template rather than by
// concrete cipher code; the library validates and generates key material,
// builds ready-to-use AEAD or streaming AEAD primitives, and frames every
// ciphertext with an output prefix that identifies the key that produced it,
// so a decrypting party can locate the right key among several.
//
// The package is organized around three ideas:
//
//   - A KeyManager encapsulates one algorithm: it validates key formats,
//     validates keys, generates fresh keys, and turns a key into a primitive.
//     Managers are routed by a stable type URL.
//
//   - A Registry is an explicit, immutable-after-setup catalog of key
//     managers. It is populated once at startup and safe for concurrent
//     reads afterwards.
//
//   - A KeyTemplate names a pre-validated (format, output prefix) pair.
//     Template constructors are pure: repeated calls return
//     configuration-equal values.
//
// Example usage:
//
//	reg := tink.NewRegistry()
//	if err := aead.RegisterKeyManagers(reg); err != nil {
//	    log.Fatal(err)
//	}
//
//	tmpl := aead.AES256GCMKeyTemplate()
//	keyData, err := reg.NewKeyData(*tmpl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	primitive, err := aead.NewWithKeyData(reg, keyData, keyID, tmpl.OutputPrefixType)
//	ciphertext, err := primitive.Encrypt(plaintext, associatedData)
//
// Key material never appears in error messages and authentication failures
// are reported through a single generic error so callers cannot distinguish
// a wrong key from corrupted ciphertext.
package tink
