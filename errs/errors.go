// Package errs defines the sentinel errors returned by the BFAST codec.
//
// Every failure mode of the codec maps to exactly one sentinel so callers
// can classify errors with errors.Is. Errors are wrapped at the failure
// site with fmt.Errorf("%w: ...") to attach the offending field and value.
// All errors are fatal to the current read or write call; the codec
// surfaces the first violated invariant and aborts.
package errs

import "errors"

// Structural errors, raised when a preamble or header violates a format
// invariant. Detected both after header assembly and after parsing.
var (
	// ErrMagicMismatch indicates the magic field is neither the native nor
	// the byte-swapped BFAST sentinel.
	ErrMagicMismatch = errors.New("magic number mismatch")

	// ErrBoundsViolation indicates dataStart, dataEnd, numArrays or the
	// range table end are mutually inconsistent.
	ErrBoundsViolation = errors.New("header bounds violation")

	// ErrRangeOutOfBounds indicates a range lies outside the data region
	// or has end before begin.
	ErrRangeOutOfBounds = errors.New("buffer range out of bounds")

	// ErrRangeOverlap indicates a range begins before the previous range
	// ends.
	ErrRangeOverlap = errors.New("buffer ranges overlap")

	// ErrMisalignedOffset indicates a buffer range begins off the 32-byte
	// alignment grid.
	ErrMisalignedOffset = errors.New("buffer offset not aligned")

	// ErrNameCountMismatch indicates the number of names does not match the
	// number of buffers.
	ErrNameCountMismatch = errors.New("buffer name count mismatch")
)

// Caller-input and stream errors.
var (
	// ErrNegativeSize indicates a declared buffer size is negative.
	ErrNegativeSize = errors.New("negative buffer size")

	// ErrAlignmentDrift indicates the observed position of a seekable
	// stream is not aligned where the layout requires it to be.
	ErrAlignmentDrift = errors.New("stream position alignment drift")

	// ErrInvalidPreambleSize indicates a byte slice holding a preamble is
	// not exactly 32 bytes.
	ErrInvalidPreambleSize = errors.New("invalid preamble size")

	// ErrInvalidRangeSize indicates a byte slice holding a range is not
	// exactly 16 bytes.
	ErrInvalidRangeSize = errors.New("invalid range size")

	// ErrShortEmit indicates a caller-supplied emit callback produced a
	// different number of bytes than it declared.
	ErrShortEmit = errors.New("emit callback wrote wrong byte count")
)
