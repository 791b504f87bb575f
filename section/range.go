package section

import (
	"fmt"

	"github.com/cdiggins/TASF/endian"
	"github.com/cdiggins/TASF/errs"
)

// Range locates one buffer inside the data region as a half-open byte span
// [Begin, End). Index 0 of a header's range table always describes the name
// blob; entry i+1 describes the buffer named by names[i].
type Range struct {
	Begin uint64 // byte offset 0-7 of the entry
	End   uint64 // byte offset 8-15 of the entry
}

// Count returns the byte length of the buffer. Derived, not stored.
func (r Range) Count() uint64 {
	return r.End - r.Begin
}

// Bytes serializes the range into a fresh 16-byte slice using the given
// endian engine.
func (r Range) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, RangeSize)
	engine.PutUint64(b[0:8], r.Begin)
	engine.PutUint64(b[8:16], r.End)

	return b
}

// AppendTo appends the 16-byte encoding of the range to buf and returns the
// extended slice. This is the efficient path when writing the whole range
// table sequentially.
func (r Range) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, r.Begin)
	buf = engine.AppendUint64(buf, r.End)

	return buf
}

// ParseRange decodes a range from a 16-byte slice using the given endian
// engine.
func ParseRange(data []byte, engine endian.EndianEngine) (Range, error) {
	if len(data) != RangeSize {
		return Range{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidRangeSize, RangeSize, len(data))
	}

	return Range{
		Begin: engine.Uint64(data[0:8]),
		End:   engine.Uint64(data[8:16]),
	}, nil
}
