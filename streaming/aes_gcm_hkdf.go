// Package streaming implements segment-oriented authenticated encryption
// for payloads too large to process as one unit. A payload is split into
// fixed-size segments, each sealed with AES-GCM under a per-stream derived
// key; segment nonces encode the segment position and a final-segment flag,
// so segments cannot be reordered, truncated or replayed across streams
// without detection.
//
// Stream wire format:
//
//	header  = headerLength(1) || salt(derivedKeySize) || noncePrefix(7)
//	segment = AES-GCM(derivedKey, nonce_i, plaintextSegment)
//	nonce_i = noncePrefix(7) || segmentIndex(4, big-endian) || finalFlag(1)
//
// The derived key is HKDF(hash, ikm=keyMaterial, salt=salt,
// info=associatedData) truncated to derivedKeySize. Salt and nonce prefix
// are drawn fresh per stream, and the counter plus final flag make every
// nonce unique within a stream. Every plaintext segment except the final
// one is exactly ciphertextSegmentSize-16 bytes; the final segment may be
// shorter or empty and is the only one flagged final.
package streaming

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math"

	"github.com/tahasabih/tink"
	"github.com/tahasabih/tink/formats"
	"github.com/tahasabih/tink/subtle"
	"golang.org/x/crypto/hkdf"
)

const (
	// NoncePrefixSize is the length of the random per-stream nonce prefix.
	NoncePrefixSize = 7
	// SegmentNonceSize is the full per-segment GCM nonce length.
	SegmentNonceSize = NoncePrefixSize + 4 + 1
	// SegmentTagSize is the GCM tag appended to every segment.
	SegmentTagSize = 16

	finalSegmentFlag = 0x01
)

// AESGCMHKDF is a streaming AEAD whose per-stream keys are derived from the
// main key material with HKDF. It is stateless and safe for concurrent use;
// all stream state lives in the writers and readers it opens.
type AESGCMHKDF struct {
	keyMaterial    []byte
	hashType       formats.HashType
	derivedKeySize int
	ctSegmentSize  int
}

var _ tink.StreamingAEAD = (*AESGCMHKDF)(nil)

// NewAESGCMHKDF creates a streaming AEAD.
//
// keyMaterial is the long-term key (at least 16 bytes and no shorter than
// derivedKeySize), derivedKeySize is the per-stream AES key size (16 or 32),
// and ciphertextSegmentSize is the on-wire segment length, which must leave
// room for the header and one tag.
func NewAESGCMHKDF(keyMaterial []byte, hkdfHashType formats.HashType, derivedKeySize, ciphertextSegmentSize int) (*AESGCMHKDF, error) {
	if err := subtle.ValidateAESKeySize(uint32(derivedKeySize)); err != nil {
		return nil, err
	}
	if len(keyMaterial) < 16 || len(keyMaterial) < derivedKeySize {
		return nil, fmt.Errorf("%w: key material too short", tink.ErrInvalidArgument)
	}
	if _, err := hashFunc(hkdfHashType); err != nil {
		return nil, err
	}
	headerLen := 1 + derivedKeySize + NoncePrefixSize
	if ciphertextSegmentSize <= headerLen+SegmentTagSize {
		return nil, fmt.Errorf("%w: ciphertext segment size %d too small", tink.ErrInvalidArgument, ciphertextSegmentSize)
	}
	return &AESGCMHKDF{
		keyMaterial:    append([]byte(nil), keyMaterial...),
		hashType:       hkdfHashType,
		derivedKeySize: derivedKeySize,
		ctSegmentSize:  ciphertextSegmentSize,
	}, nil
}

func hashFunc(h formats.HashType) (func() hash.Hash, error) {
	switch h {
	case formats.SHA1:
		return sha1.New, nil
	case formats.SHA256:
		return sha256.New, nil
	case formats.SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: unsupported HKDF hash type %s", tink.ErrInvalidArgument, h)
	}
}

// headerLength is the length of the per-stream header.
func (a *AESGCMHKDF) headerLength() int {
	return 1 + a.derivedKeySize + NoncePrefixSize
}

// plaintextSegmentSize is the number of plaintext bytes per full segment.
func (a *AESGCMHKDF) plaintextSegmentSize() int {
	return a.ctSegmentSize - SegmentTagSize
}

func (a *AESGCMHKDF) deriveAEAD(salt, associatedData []byte) (cipher.AEAD, error) {
	h, err := hashFunc(a.hashType)
	if err != nil {
		return nil, err
	}
	derived := make([]byte, a.derivedKeySize)
	if _, err := io.ReadFull(hkdf.New(h, a.keyMaterial, salt, associatedData), derived); err != nil {
		return nil, fmt.Errorf("streaming: key derivation failed: %w", err)
	}
	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("streaming: failed to create AES cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func segmentNonce(noncePrefix []byte, index uint32, final bool) []byte {
	nonce := make([]byte, SegmentNonceSize)
	copy(nonce, noncePrefix)
	binary.BigEndian.PutUint32(nonce[NoncePrefixSize:], index)
	if final {
		nonce[SegmentNonceSize-1] = finalSegmentFlag
	}
	return nonce
}

// NewEncryptingWriter opens an encrypting stream on top of w. The stream
// header is written immediately; ciphertext segments follow as enough
// plaintext accumulates, and Close seals the final segment.
func (a *AESGCMHKDF) NewEncryptingWriter(w io.Writer, associatedData []byte) (io.WriteCloser, error) {
	salt, err := subtle.RandomBytes(uint32(a.derivedKeySize))
	if err != nil {
		return nil, err
	}
	noncePrefix, err := subtle.RandomBytes(NoncePrefixSize)
	if err != nil {
		return nil, err
	}
	aead, err := a.deriveAEAD(salt, associatedData)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 0, a.headerLength())
	header = append(header, byte(a.headerLength()))
	header = append(header, salt...)
	header = append(header, noncePrefix...)
	if _, err := w.Write(header); err != nil {
		return nil, fmt.Errorf("streaming: failed to write stream header: %w", err)
	}

	return &encryptingWriter{
		w:           w,
		aead:        aead,
		noncePrefix: noncePrefix,
		buf:         make([]byte, 0, a.plaintextSegmentSize()),
		segSize:     a.plaintextSegmentSize(),
	}, nil
}

type encryptingWriter struct {
	w           io.Writer
	aead        cipher.AEAD
	noncePrefix []byte
	buf         []byte
	segSize     int
	index       uint32
	closed      bool
}

// Write buffers plaintext, sealing a full segment whenever more input
// proves it is not the final one.
func (ew *encryptingWriter) Write(p []byte) (int, error) {
	if ew.closed {
		return 0, fmt.Errorf("streaming: write on closed stream")
	}
	written := 0
	for len(p) > 0 {
		if len(ew.buf) == ew.segSize {
			if err := ew.flush(false); err != nil {
				return written, err
			}
		}
		n := ew.segSize - len(ew.buf)
		if n > len(p) {
			n = len(p)
		}
		ew.buf = append(ew.buf, p[:n]...)
		p = p[n:]
		written += n
	}
	return written, nil
}

// Close seals whatever is buffered (possibly nothing) as the final segment.
func (ew *encryptingWriter) Close() error {
	if ew.closed {
		return nil
	}
	ew.closed = true
	return ew.flush(true)
}

func (ew *encryptingWriter) flush(final bool) error {
	if !final && ew.index == math.MaxUint32 {
		return fmt.Errorf("streaming: segment counter overflow")
	}
	nonce := segmentNonce(ew.noncePrefix, ew.index, final)
	segment := ew.aead.Seal(nil, nonce, ew.buf, nil)
	if _, err := ew.w.Write(segment); err != nil {
		return fmt.Errorf("streaming: failed to write segment: %w", err)
	}
	ew.index++
	ew.buf = ew.buf[:0]
	return nil
}

// NewDecryptingReader opens a decrypting stream on top of r. The header is
// consumed immediately; plaintext becomes available segment by segment,
// and only after the segment's tag has verified. Any verification failure
// or truncation surfaces as ErrAuthenticationFailed.
func (a *AESGCMHKDF) NewDecryptingReader(r io.Reader, associatedData []byte) (io.Reader, error) {
	header := make([]byte, a.headerLength())
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, tink.ErrAuthenticationFailed
	}
	if int(header[0]) != a.headerLength() {
		return nil, tink.ErrAuthenticationFailed
	}
	salt := header[1 : 1+a.derivedKeySize]
	noncePrefix := header[1+a.derivedKeySize:]

	aead, err := a.deriveAEAD(salt, associatedData)
	if err != nil {
		return nil, err
	}

	return &decryptingReader{
		r:           r,
		aead:        aead,
		noncePrefix: append([]byte(nil), noncePrefix...),
		scratch:     make([]byte, a.ctSegmentSize+1),
	}, nil
}

type decryptingReader struct {
	r           io.Reader
	aead        cipher.AEAD
	noncePrefix []byte
	scratch     []byte // one ciphertext segment plus one lookahead byte
	pending     int    // carried-over bytes at the start of scratch
	plaintext   []byte
	index       uint32
	done        bool
	err         error
}

func (dr *decryptingReader) Read(p []byte) (int, error) {
	if dr.err != nil {
		return 0, dr.err
	}
	for len(dr.plaintext) == 0 {
		if dr.done {
			return 0, io.EOF
		}
		if err := dr.nextSegment(); err != nil {
			dr.err = err
			return 0, err
		}
	}
	n := copy(p, dr.plaintext)
	dr.plaintext = dr.plaintext[n:]
	return n, nil
}

// nextSegment reads one ciphertext segment with one byte of lookahead: a
// segment is final exactly when the stream ends with it.
func (dr *decryptingReader) nextSegment() error {
	n, err := io.ReadFull(dr.r, dr.scratch[dr.pending:])
	total := dr.pending + n

	var segment []byte
	var final bool
	switch err {
	case nil:
		// Lookahead byte present: this segment is not the final one.
		segment = dr.scratch[: total-1 : total-1]
		final = false
	case io.EOF, io.ErrUnexpectedEOF:
		segment = dr.scratch[:total]
		final = true
	default:
		return fmt.Errorf("streaming: failed to read segment: %w", err)
	}

	if final && total < SegmentTagSize {
		return tink.ErrAuthenticationFailed
	}
	nonce := segmentNonce(dr.noncePrefix, dr.index, final)
	plaintext, aeadErr := dr.aead.Open(nil, nonce, segment, nil)
	if aeadErr != nil {
		return tink.ErrAuthenticationFailed
	}

	dr.index++
	dr.done = final
	dr.plaintext = plaintext
	if !final {
		// Carry the lookahead byte into the next segment.
		dr.scratch[0] = dr.scratch[total-1]
		dr.pending = 1
	}
	return nil
}
