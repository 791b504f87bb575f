package blob

import (
	"errors"
	"fmt"
	"io"

	"github.com/cdiggins/TASF/align"
	"github.com/cdiggins/TASF/encoding"
	"github.com/cdiggins/TASF/errs"
	"github.com/cdiggins/TASF/section"
)

// BufferFunc materializes the payload of one buffer during Read. It
// receives a source limited to exactly count bytes; index counts data
// buffers from 0 and excludes the name blob. Bytes the callback leaves
// unread are discarded so the protocol stays in sync.
type BufferFunc func(src io.Reader, index int, name string, count uint64) error

// rangePreallocLimit caps the range table capacity reserved before any
// entry has been read from the stream.
const rangePreallocLimit = 1024

// ReadHeader parses and validates the header section of a stream: the
// preamble, the range table, and the name blob, consuming the source up to
// the first data buffer.
//
// The byte order of the producing platform is detected from the magic
// sentinel; a big-endian stream has all header fields decoded accordingly.
// The preamble is validated before the range table is read, and the full
// header is validated before it is returned.
func ReadHeader(r io.Reader) (section.Header, error) {
	var pbuf [section.PreambleSize]byte
	if _, err := io.ReadFull(r, pbuf[:]); err != nil {
		return section.Header{}, fmt.Errorf("read preamble: %w", err)
	}

	preamble, engine, err := section.ParsePreamble(pbuf[:])
	if err != nil {
		return section.Header{}, err
	}
	if err := preamble.Validate(); err != nil {
		return section.Header{}, err
	}

	// Grow the table as entries arrive instead of trusting the declared
	// count for one big allocation; a short hostile stream fails on the
	// first missing entry having cost only what it actually carried.
	ranges := make([]section.Range, 0, int(min(preamble.NumArrays, rangePreallocLimit)))
	var rbuf [section.RangeSize]byte
	for i := int64(0); i < preamble.NumArrays; i++ {
		if _, err := io.ReadFull(r, rbuf[:]); err != nil {
			return section.Header{}, fmt.Errorf("read range %d: %w", i, err)
		}
		rg, err := section.ParseRange(rbuf[:], engine)
		if err != nil {
			return section.Header{}, err
		}
		ranges = append(ranges, rg)
	}

	if err := skipPadding(r, align.Padding(preamble.RangesEnd()), false); err != nil {
		return section.Header{}, err
	}

	header := section.Header{Preamble: preamble, Ranges: ranges, Names: []string{}}
	if len(ranges) == 0 {
		// No name blob slot at all; full validation rejects the header.
		if err := header.Validate(); err != nil {
			return section.Header{}, err
		}

		return header, nil
	}

	nameCount := ranges[0].Count()
	if nameCount > preamble.DataEnd {
		// Pre-validation guard; the remaining range checks run once the
		// names are decoded.
		return section.Header{}, fmt.Errorf("%w: range 0 spans [%d, %d) outside data region [%d, %d)",
			errs.ErrRangeOutOfBounds, ranges[0].Begin, ranges[0].End, preamble.DataStart, preamble.DataEnd)
	}

	// The count is still attacker-declared (bounded only by dataEnd), so
	// read through a limit and let the buffer grow with the bytes actually
	// present instead of allocating the declared size up front.
	nameBlob, err := io.ReadAll(io.LimitReader(r, int64(nameCount))) //nolint:gosec
	if err != nil {
		return section.Header{}, fmt.Errorf("read name blob: %w", err)
	}
	if uint64(len(nameBlob)) != nameCount {
		return section.Header{}, fmt.Errorf("read name blob: %w", io.ErrUnexpectedEOF)
	}
	header.Names = encoding.DecodeNames(nameBlob)

	if err := skipPadding(r, align.Padding(ranges[0].End), false); err != nil {
		return section.Header{}, err
	}

	if err := header.Validate(); err != nil {
		return section.Header{}, err
	}

	return header, nil
}

// Read consumes a complete BFAST stream: it reads and validates the header,
// then invokes onBuffer once per data buffer in index order, skipping the
// padding after each payload. This is the read entry point.
//
// If the source is an io.Seeker, the position before each buffer is audited
// with the alignment arithmetic and a mismatch fails with
// ErrAlignmentDrift. Non-seekable sources trust the declared layout.
//
// Padding after the final buffer is optional in the stream; end of input
// there is not an error.
func Read(r io.Reader, onBuffer BufferFunc) (section.Header, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return section.Header{}, err
	}

	for i := 1; i < len(header.Ranges); i++ {
		name := header.Names[i-1]
		count := header.Ranges[i].Count()

		if err := checkAligned(r, header.Ranges[i].Begin); err != nil {
			return header, err
		}

		limited := &io.LimitedReader{R: r, N: int64(count)} //nolint:gosec
		if err := onBuffer(limited, i-1, name, count); err != nil {
			return header, fmt.Errorf("read buffer %d (%q): %w", i-1, name, err)
		}
		if limited.N > 0 {
			// The callback did not consume the whole payload; discard the
			// remainder to keep the stream position on protocol.
			if _, err := io.Copy(io.Discard, limited); err != nil {
				return header, fmt.Errorf("drain buffer %d (%q): %w", i-1, name, err)
			}
		}

		last := i == len(header.Ranges)-1
		if err := skipPadding(r, align.Padding(header.Ranges[i].End), last); err != nil {
			return header, err
		}
	}

	return header, nil
}

// skipPadding discards n padding bytes from the source. When eofOK is set,
// running out of input inside the padding is tolerated; trailing padding
// after the final buffer is dead space a writer may omit.
func skipPadding(r io.Reader, n uint64, eofOK bool) error {
	if n == 0 {
		return nil
	}

	_, err := io.CopyN(io.Discard, r, int64(n)) //nolint:gosec
	if err == nil {
		return nil
	}
	if eofOK && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
		return nil
	}

	return fmt.Errorf("skip padding: %w", err)
}

// checkAligned audits the observed position of a seekable source against
// the alignment grid. Sources that do not seek are trusted, since the
// declared sizes already pin every offset.
func checkAligned(r io.Reader, want uint64) error {
	seeker, ok := r.(io.Seeker)
	if !ok {
		return nil
	}

	pos, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil // source refuses to report; fall back to trusting the layout
	}

	if !align.IsAligned(uint64(pos)) { //nolint:gosec
		return fmt.Errorf("%w: position %d, expected aligned offset %d", errs.ErrAlignmentDrift, pos, want)
	}

	return nil
}
