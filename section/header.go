package section

import (
	"fmt"
	"slices"

	"github.com/cdiggins/TASF/align"
	"github.com/cdiggins/TASF/encoding"
	"github.com/cdiggins/TASF/errs"
)

// Header is the full layout descriptor of a BFAST stream: the preamble, the
// range table, and the decoded buffer names.
//
// Ranges[0] always describes the name blob; Ranges[i+1] corresponds to
// Names[i]. A Header is built once, by BuildHeader on the write path or by
// the stream reader on the read path, and is immutable afterwards.
type Header struct {
	Preamble Preamble
	Ranges   []Range
	Names    []string
}

// BufferCount returns the number of data buffers, excluding the name blob.
func (h Header) BufferCount() int {
	return len(h.Ranges) - 1
}

// NameBlobRange returns the range of the name blob (buffer index 0).
func (h Header) NameBlobRange() Range {
	return h.Ranges[0]
}

// BuildHeader computes a validated Header for buffers with the given names
// and byte sizes.
//
// The layout places the name blob first, then each buffer in order, every
// one starting on a 32-byte boundary, packed contiguously with at most 31
// padding bytes between any two. The data region itself starts at the first
// aligned offset past the range table.
//
// Mismatched name/size counts fail with ErrNameCountMismatch and a negative
// size fails with ErrNegativeSize; both are caller-input errors. The
// assembled header is validated before it is returned — a validation
// failure at that point is an internal consistency fault, not bad input.
func BuildHeader(names []string, sizes []int64) (Header, error) {
	if len(names) != len(sizes) {
		return Header{}, fmt.Errorf("%w: %d names for %d sizes", errs.ErrNameCountMismatch, len(names), len(sizes))
	}
	for i, size := range sizes {
		if size < 0 {
			return Header{}, fmt.Errorf("%w: buffer %d (%q) declares size %d", errs.ErrNegativeSize, i, names[i], size)
		}
	}

	numArrays := int64(len(sizes)) + 1 // extra slot for the name blob
	dataStart := dataStartFor(numArrays)

	// Effective layout sizes: the packed name blob, then each data buffer.
	effective := make([]uint64, 0, numArrays)
	effective = append(effective, encoding.EncodedNamesSize(names))
	for _, size := range sizes {
		effective = append(effective, uint64(size))
	}

	ranges := make([]Range, 0, numArrays)
	cursor := dataStart
	for _, size := range effective {
		cursor = align.NextAligned(cursor)
		r := Range{Begin: cursor}
		cursor += size
		r.End = cursor
		ranges = append(ranges, r)
	}

	h := Header{
		Preamble: NewPreamble(dataStart, cursor, numArrays),
		Ranges:   ranges,
		Names:    slices.Clone(names),
	}

	if err := h.Validate(); err != nil {
		return Header{}, fmt.Errorf("assembled header failed validation: %w", err)
	}

	return h, nil
}

// Validate checks every structural invariant of the header: the preamble
// first, then the range table (alignment, bounds, ordering), then the name
// count. The first violated check aborts with a descriptive error wrapping
// the matching sentinel.
//
// Validation is read-only and idempotent; it runs both after assembly and
// after parsing a header from a stream.
func (h Header) Validate() error {
	if err := h.Preamble.Validate(); err != nil {
		return err
	}

	if int64(len(h.Ranges)) != h.Preamble.NumArrays {
		return fmt.Errorf("%w: %d ranges for numArrays %d", errs.ErrBoundsViolation, len(h.Ranges), h.Preamble.NumArrays)
	}

	for i, r := range h.Ranges {
		if !align.IsAligned(r.Begin) {
			return fmt.Errorf("%w: range %d begins at %d", errs.ErrMisalignedOffset, i, r.Begin)
		}
		if r.Begin < h.Preamble.DataStart || r.End < r.Begin || r.End > h.Preamble.DataEnd {
			return fmt.Errorf("%w: range %d spans [%d, %d) outside data region [%d, %d)",
				errs.ErrRangeOutOfBounds, i, r.Begin, r.End, h.Preamble.DataStart, h.Preamble.DataEnd)
		}
		if i > 0 && r.Begin < h.Ranges[i-1].End {
			return fmt.Errorf("%w: range %d begins at %d before range %d ends at %d",
				errs.ErrRangeOverlap, i, r.Begin, i-1, h.Ranges[i-1].End)
		}
	}

	if len(h.Names) != len(h.Ranges)-1 {
		return fmt.Errorf("%w: %d names for %d ranges", errs.ErrNameCountMismatch, len(h.Names), len(h.Ranges))
	}

	return nil
}
