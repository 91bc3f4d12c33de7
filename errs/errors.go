// Package errs defines sentinel error values shared across primecount packages.
//
// Callers can match these with errors.Is after unwrapping, since the library
// wraps them with fmt.Errorf("%w: ...") to add context.
package errs

import "errors"

var (
	// ErrInvalidLimit is returned when a sieve limit is negative.
	// It is raised before any buffer allocation takes place.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidSnapshot is returned when snapshot data is malformed:
	// wrong magic number, truncated header, or payload length mismatch.
	ErrInvalidSnapshot = errors.New("invalid snapshot data")

	// ErrUnsupportedVersion is returned when a snapshot was written by a
	// newer format version than this library understands.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrUnsupportedCompression is returned when a snapshot header names a
	// compression type with no registered codec.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrChecksumMismatch is returned when the decompressed bitmap does not
	// match the checksum recorded in the snapshot header.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrCountMismatch is returned by snapshot verification when the stored
	// prime count disagrees with the bitmap contents or a fresh sieve run.
	ErrCountMismatch = errors.New("prime count mismatch")
)
