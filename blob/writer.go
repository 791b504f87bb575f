package blob

import (
	"fmt"
	"io"

	"github.com/cdiggins/TASF/align"
	"github.com/cdiggins/TASF/encoding"
	"github.com/cdiggins/TASF/endian"
	"github.com/cdiggins/TASF/errs"
	"github.com/cdiggins/TASF/internal/pool"
	"github.com/cdiggins/TASF/section"
)

// EmitFunc produces the payload bytes of one buffer during Write. It must
// write exactly size bytes to w; index counts data buffers from 0 and
// excludes the name blob. The codec verifies the byte count and fails with
// ErrShortEmit on any discrepancy.
type EmitFunc func(w io.Writer, index int, name string, size int64) error

// zeroPadding is the source for all padding writes. Padding is always
// shorter than one alignment unit.
var zeroPadding [align.Alignment]byte

// countingWriter tracks how many bytes passed through to the sink.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}

// WriteHeader serializes the header section of a stream: the preamble, the
// range table, padding to the next boundary, the packed name blob, and
// padding to the start of the first data buffer. Header fields are encoded
// in the host's byte order; readers recover it from the magic sentinel.
//
// The header is assembled in a pooled buffer and written to the sink in one
// call. Returns the number of bytes written, which for a valid header
// always equals header.Preamble.DataStart plus the padded name blob.
//
// A header whose range count does not exceed its name count by exactly one
// fails with ErrNameCountMismatch before anything is written.
func WriteHeader(w io.Writer, header section.Header) (int64, error) {
	if len(header.Ranges) != len(header.Names)+1 {
		return 0, fmt.Errorf("%w: %d ranges for %d names", errs.ErrNameCountMismatch, len(header.Ranges), len(header.Names))
	}

	engine := endian.GetNativeEngine()
	nameBlob := encoding.EncodeNames(header.Names)

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	nameEnd := header.NameBlobRange().End
	buf.Grow(section.PreambleSize + len(header.Ranges)*section.RangeSize +
		len(nameBlob) + 2*align.Alignment)

	buf.MustWrite(header.Preamble.Bytes(engine))
	for _, r := range header.Ranges {
		buf.B = r.AppendTo(buf.B, engine)
	}
	buf.MustWrite(zeroPadding[:align.Padding(header.Preamble.RangesEnd())])
	buf.MustWrite(nameBlob)
	buf.MustWrite(zeroPadding[:align.Padding(nameEnd)])

	return buf.WriteTo(w)
}

// WriteBody emits each buffer's payload in order, invoking emit once per
// buffer and following each payload with its padding. emit must produce
// exactly the declared number of bytes; the sink handed to it is wrapped so
// the codec can verify the count.
//
// A negative declared size fails with ErrNegativeSize before that buffer's
// emit is invoked. Returns the number of bytes written, including padding.
func WriteBody(w io.Writer, names []string, sizes []int64, emit EmitFunc) (int64, error) {
	if len(names) != len(sizes) {
		return 0, fmt.Errorf("%w: %d names for %d sizes", errs.ErrNameCountMismatch, len(names), len(sizes))
	}

	cw := &countingWriter{w: w}
	for i, size := range sizes {
		if size < 0 {
			return cw.n, fmt.Errorf("%w: buffer %d (%q) declares size %d", errs.ErrNegativeSize, i, names[i], size)
		}

		start := cw.n
		if err := emit(cw, i, names[i], size); err != nil {
			return cw.n, fmt.Errorf("emit buffer %d (%q): %w", i, names[i], err)
		}
		if cw.n-start != size {
			return cw.n, fmt.Errorf("%w: buffer %d (%q) declared %d bytes, emitted %d",
				errs.ErrShortEmit, i, names[i], size, cw.n-start)
		}

		pad := align.Padding(uint64(size)) //nolint:gosec
		if pad > 0 {
			if _, err := cw.Write(zeroPadding[:pad]); err != nil {
				return cw.n, fmt.Errorf("write padding for buffer %d: %w", i, err)
			}
		}
	}

	return cw.n, nil
}

// Write serializes a complete BFAST stream: it assembles and validates the
// header from the given names and sizes, writes it, then writes the body by
// invoking emit once per buffer. This is the write entry point; WriteHeader
// and WriteBody exist for callers that stage the two phases separately.
//
// Returns the total number of bytes written. Every buffer, including the
// last, is followed by its padding, so on success the total equals the
// assembled header's DataEnd rounded up to the next alignment boundary.
func Write(w io.Writer, names []string, sizes []int64, emit EmitFunc) (int64, error) {
	header, err := section.BuildHeader(names, sizes)
	if err != nil {
		return 0, err
	}

	written, err := WriteHeader(w, header)
	if err != nil {
		return written, err
	}

	body, err := WriteBody(w, names, sizes, emit)
	written += body
	if err != nil {
		return written, err
	}

	return written, nil
}
