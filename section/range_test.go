package section

import (
	"testing"

	"github.com/cdiggins/TASF/endian"
	"github.com/cdiggins/TASF/errs"
	"github.com/stretchr/testify/require"
)

func TestRangeCount(t *testing.T) {
	require.Equal(t, uint64(0), Range{Begin: 64, End: 64}.Count())
	require.Equal(t, uint64(100), Range{Begin: 64, End: 164}.Count())
}

func TestRangeBytesRoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		original := Range{Begin: 64, End: 1024}

		data := original.Bytes(engine)
		require.Len(t, data, RangeSize)

		parsed, err := ParseRange(data, engine)
		require.NoError(t, err)
		require.Equal(t, original, parsed)
	}
}

func TestRangeAppendTo(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := Range{Begin: 96, End: 128}

	buf := r.AppendTo(nil, engine)
	require.Equal(t, r.Bytes(engine), buf)

	// Appending extends rather than overwrites.
	buf = r.AppendTo(buf, engine)
	require.Len(t, buf, 2*RangeSize)
}

func TestParseRangeWrongSize(t *testing.T) {
	_, err := ParseRange([]byte{1, 2, 3}, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidRangeSize)
}
