package tink

// KeyMaterialType describes the sensitivity of serialized key material.
type KeyMaterialType int

const (
	// KeyMaterialUnknown is the zero value.
	KeyMaterialUnknown KeyMaterialType = iota
	// KeyMaterialSymmetric marks secret symmetric key material.
	KeyMaterialSymmetric
)

// KeyData is serialized key material tagged with the type URL of the manager
// that understands it. Value contains secret bytes and must never be logged
// or embedded in error messages.
type KeyData struct {
	TypeURL         string
	Value           []byte
	KeyMaterialType KeyMaterialType
}

// KeyManager encapsulates one algorithm: key format validation, key
// validation, key generation and primitive construction. Implementations are
// stateless; every method call is independent and safe for concurrent use.
//
// A KeyManager is identified by a stable type URL, which routes templates
// and key data to it.
type KeyManager interface {
	// TypeURL returns the unique identifier of the key type this manager
	// understands, e.g. "type.googleapis.com/google.crypto.tink.AesGcmKey".
	TypeURL() string

	// Version returns the highest key format/key version the manager
	// supports. Keys carrying a newer version are rejected with
	// ErrUnsupportedVersion.
	Version() uint32

	// NewKeyData validates serializedFormat and, if it is acceptable,
	// generates fresh random key material at the manager's current version.
	// No randomness is drawn when validation fails.
	NewKeyData(serializedFormat []byte) (*KeyData, error)

	// Primitive validates serializedKey and constructs a ready-to-use
	// primitive (an AEAD or StreamingAEAD) bound to that key.
	Primitive(serializedKey []byte) (any, error)
}
