package tink

import "io"

// AEAD is authenticated encryption with associated data. The associated data
// is authenticated but not encrypted; decryption succeeds only when called
// with the same associated data that was passed to Encrypt.
//
// Implementations hold no mutable per-call state and are safe for concurrent
// use by multiple goroutines.
type AEAD interface {
	// Encrypt encrypts plaintext with associatedData. Nil and empty
	// associated data are equivalent.
	Encrypt(plaintext, associatedData []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with associatedData. It returns
	// ErrAuthenticationFailed whenever verification fails, without
	// distinguishing the cause.
	Decrypt(ciphertext, associatedData []byte) ([]byte, error)
}

// StreamingAEAD is authenticated encryption for payloads too large to hold
// in memory. Both directions process one segment at a time; the decrypting
// reader never returns plaintext from a segment whose tag has not verified.
type StreamingAEAD interface {
	// NewEncryptingWriter returns a WriteCloser that encrypts what is
	// written to it and writes ciphertext segments to w. Close must be
	// called to flush the final segment.
	NewEncryptingWriter(w io.Writer, associatedData []byte) (io.WriteCloser, error)

	// NewDecryptingReader returns a Reader that reads ciphertext segments
	// from r and yields verified plaintext. Any tag failure or truncation
	// surfaces as ErrAuthenticationFailed.
	NewDecryptingReader(r io.Reader, associatedData []byte) (io.Reader, error)
}
