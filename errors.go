package tink

import "errors"

var (
	// ErrInvalidArgument is returned when a key format or key is rejected by
	// validation, for example a key size outside the algorithm's allow-list.
	ErrInvalidArgument = errors.New("tink: invalid argument")

	// ErrMalformedCiphertext is returned when a ciphertext is too short to
	// carry the expected output prefix.
	ErrMalformedCiphertext = errors.New("tink: malformed ciphertext")

	// ErrAuthenticationFailed is returned whenever decryption fails to
	// verify. It deliberately carries no cause: a wrong key, corrupted bytes
	// and a truncated ciphertext are indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("tink: decryption failed")

	// ErrUnsupportedVersion is returned when a key or key format declares a
	// version newer than the key manager supports.
	ErrUnsupportedVersion = errors.New("tink: unsupported version")

	// ErrConfiguration is returned for registry misconfiguration, such as
	// registering two incompatible key managers under one type URL. It is
	// reported at setup time, never per call.
	ErrConfiguration = errors.New("tink: configuration error")
)

// IsInvalidArgument reports whether err is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsMalformedCiphertext reports whether err is or wraps ErrMalformedCiphertext.
func IsMalformedCiphertext(err error) bool {
	return errors.Is(err, ErrMalformedCiphertext)
}

// IsAuthenticationFailed reports whether err is or wraps ErrAuthenticationFailed.
func IsAuthenticationFailed(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}

// IsUnsupportedVersion reports whether err is or wraps ErrUnsupportedVersion.
func IsUnsupportedVersion(err error) bool {
	return errors.Is(err, ErrUnsupportedVersion)
}

// IsConfiguration reports whether err is or wraps ErrConfiguration.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
