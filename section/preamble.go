package section

import (
	"fmt"

	"github.com/cdiggins/TASF/align"
	"github.com/cdiggins/TASF/endian"
	"github.com/cdiggins/TASF/errs"
)

// Preamble is the fixed 32-byte record at the start of every BFAST stream.
//
// The four fields are stored as consecutive 8-byte words in the byte order
// of the producing platform. NumArrays counts every buffer in the stream,
// including the name blob at index 0.
type Preamble struct {
	Magic     uint64 // byte offset 0-7
	DataStart uint64 // byte offset 8-15
	DataEnd   uint64 // byte offset 16-23
	NumArrays int64  // byte offset 24-31
}

// NewPreamble creates a Preamble describing a data region [dataStart,
// dataEnd) holding numArrays buffers, with the native magic sentinel.
func NewPreamble(dataStart, dataEnd uint64, numArrays int64) Preamble {
	return Preamble{
		Magic:     MagicNumber,
		DataStart: dataStart,
		DataEnd:   dataEnd,
		NumArrays: numArrays,
	}
}

// RangesEnd returns the byte offset just past the range table. It is
// derived, not stored: PreambleSize + NumArrays*RangeSize.
//
// Only meaningful for a validated preamble; a negative or oversized
// NumArrays makes the multiplication wrap and the result undefined.
func (p Preamble) RangesEnd() uint64 {
	return PreambleSize + uint64(p.NumArrays)*RangeSize //nolint:gosec
}

// Bytes serializes the preamble into a fresh 32-byte slice using the given
// endian engine.
func (p Preamble) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, PreambleSize)
	engine.PutUint64(b[0:8], p.Magic)
	engine.PutUint64(b[8:16], p.DataStart)
	engine.PutUint64(b[16:24], p.DataEnd)
	engine.PutUint64(b[24:32], uint64(p.NumArrays)) //nolint:gosec

	return b
}

// ParsePreamble decodes a preamble from a 32-byte slice, detecting the byte
// order of the producing platform from the magic field.
//
// It first decodes with the little-endian engine; if the magic matches the
// byte-swapped sentinel, the stream was written big-endian and every field
// is re-decoded with the big-endian engine. The returned engine is the one
// that decoded the fields and must be used for the rest of the header.
//
// The magic check happens before any other field is inspected; a stream
// carrying neither sentinel fails with ErrMagicMismatch.
func ParsePreamble(data []byte) (Preamble, endian.EndianEngine, error) {
	if len(data) != PreambleSize {
		return Preamble{}, nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidPreambleSize, PreambleSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	magic := engine.Uint64(data[0:8])

	switch magic {
	case MagicNumber:
		// Native little-endian stream.
	case MagicNumberSwapped:
		// Byte-swapped sentinel: the writer was big-endian, so all header
		// fields must be decoded with the big-endian engine.
		engine = endian.GetBigEndianEngine()
		magic = engine.Uint64(data[0:8])
	default:
		return Preamble{}, nil, fmt.Errorf("%w: got 0x%016X, want 0x%016X or 0x%016X",
			errs.ErrMagicMismatch, magic, MagicNumber, MagicNumberSwapped)
	}

	p := Preamble{
		Magic:     magic,
		DataStart: engine.Uint64(data[8:16]),
		DataEnd:   engine.Uint64(data[16:24]),
		NumArrays: int64(engine.Uint64(data[24:32])), //nolint:gosec
	}

	return p, engine, nil
}

// Validate checks the structural invariants of the preamble in fixed order:
// magic, then region bounds, then buffer counts. The first violated check
// aborts with a descriptive error wrapping the matching sentinel.
//
// Validation is read-only and idempotent.
func (p Preamble) Validate() error {
	if p.Magic != MagicNumber && p.Magic != MagicNumberSwapped {
		return fmt.Errorf("%w: got 0x%016X, want 0x%016X or 0x%016X",
			errs.ErrMagicMismatch, p.Magic, MagicNumber, MagicNumberSwapped)
	}

	if p.DataStart < PreambleSize {
		return fmt.Errorf("%w: dataStart %d precedes preamble end %d", errs.ErrBoundsViolation, p.DataStart, PreambleSize)
	}
	if p.DataStart > p.DataEnd {
		return fmt.Errorf("%w: dataStart %d exceeds dataEnd %d", errs.ErrBoundsViolation, p.DataStart, p.DataEnd)
	}

	if p.NumArrays < 0 {
		return fmt.Errorf("%w: numArrays %d is negative", errs.ErrBoundsViolation, p.NumArrays)
	}
	if uint64(p.NumArrays) > p.DataEnd {
		return fmt.Errorf("%w: numArrays %d exceeds dataEnd %d", errs.ErrBoundsViolation, p.NumArrays, p.DataEnd)
	}

	// Non-wrapping form of rangesEnd <= dataStart: the multiplication in
	// RangesEnd can overflow for a hostile count, so bound the count by the
	// room between the preamble and the data region instead.
	if uint64(p.NumArrays) > (p.DataStart-PreambleSize)/RangeSize {
		return fmt.Errorf("%w: range table for %d buffers overruns data region start %d", errs.ErrBoundsViolation, p.NumArrays, p.DataStart)
	}

	return nil
}

// dataStartFor returns the aligned data region start for a stream holding
// numArrays buffers: the range table end rounded up to the next boundary.
func dataStartFor(numArrays int64) uint64 {
	return align.NextAligned(PreambleSize + uint64(numArrays)*RangeSize) //nolint:gosec
}
