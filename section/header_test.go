package section

import (
	"testing"

	"github.com/cdiggins/TASF/align"
	"github.com/cdiggins/TASF/encoding"
	"github.com/cdiggins/TASF/errs"
	"github.com/stretchr/testify/require"
)

func TestBuildHeader(t *testing.T) {
	t.Run("Two buffers", func(t *testing.T) {
		names := []string{"xs", "ys"}
		sizes := []int64{12, 12}

		h, err := BuildHeader(names, sizes)
		require.NoError(t, err)

		require.Equal(t, int64(3), h.Preamble.NumArrays)
		require.Equal(t, 2, h.BufferCount())
		require.Equal(t, names, h.Names)

		// Data region begins at the first aligned offset past the range
		// table: 32 + 3*16 = 80, rounded up to 96.
		require.Equal(t, uint64(96), h.Preamble.DataStart)

		// Name blob range covers exactly the packed name table.
		require.Equal(t, encoding.EncodedNamesSize(names), h.NameBlobRange().Count())
		require.Equal(t, h.Preamble.DataStart, h.NameBlobRange().Begin)

		// Data buffer ranges carry the declared sizes.
		require.Equal(t, uint64(12), h.Ranges[1].Count())
		require.Equal(t, uint64(12), h.Ranges[2].Count())

		require.Equal(t, h.Ranges[len(h.Ranges)-1].End, h.Preamble.DataEnd)
	})

	t.Run("Zero buffers still carry the name blob", func(t *testing.T) {
		h, err := BuildHeader(nil, nil)
		require.NoError(t, err)

		require.Equal(t, int64(1), h.Preamble.NumArrays)
		require.Equal(t, 0, h.BufferCount())
		require.Equal(t, uint64(0), h.NameBlobRange().Count())
		require.Equal(t, h.Preamble.DataStart, h.Preamble.DataEnd)
	})

	t.Run("Zero-length buffers", func(t *testing.T) {
		h, err := BuildHeader([]string{"empty", "full"}, []int64{0, 7})
		require.NoError(t, err)

		require.Equal(t, uint64(0), h.Ranges[1].Count())
		require.Equal(t, uint64(7), h.Ranges[2].Count())
		require.NoError(t, h.Validate())
	})

	t.Run("Mismatched counts", func(t *testing.T) {
		_, err := BuildHeader([]string{"xs"}, []int64{1, 2})
		require.ErrorIs(t, err, errs.ErrNameCountMismatch)
	})

	t.Run("Negative size", func(t *testing.T) {
		_, err := BuildHeader([]string{"xs"}, []int64{-1})
		require.ErrorIs(t, err, errs.ErrNegativeSize)
	})
}

// Layout laws: every assembled range begins aligned, ranges ascend without
// overlap, and gaps never exceed 31 padding bytes.
func TestBuildHeaderLayoutLaws(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		sizes []int64
	}{
		{"small", []string{"a", "b"}, []int64{1, 1}},
		{"aligned sizes", []string{"x", "y", "z"}, []int64{32, 64, 96}},
		{"odd sizes", []string{"p", "q", "r", "s"}, []int64{1, 31, 33, 63}},
		{"mixed empties", []string{"", "big", ""}, []int64{0, 1000, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := BuildHeader(tc.names, tc.sizes)
			require.NoError(t, err)
			require.NoError(t, h.Validate())

			for i, r := range h.Ranges {
				require.True(t, align.IsAligned(r.Begin), "range %d begin %d", i, r.Begin)
				require.LessOrEqual(t, r.Begin, r.End)

				if i > 0 {
					require.GreaterOrEqual(t, r.Begin, h.Ranges[i-1].End)
					require.Less(t, r.Begin-h.Ranges[i-1].End, uint64(align.Alignment))
				}
			}
		})
	}
}

func TestHeaderValidate(t *testing.T) {
	valid := func(t *testing.T) Header {
		t.Helper()
		h, err := BuildHeader([]string{"xs", "ys"}, []int64{8, 8})
		require.NoError(t, err)

		return h
	}

	t.Run("Assembled header is valid and idempotent", func(t *testing.T) {
		h := valid(t)
		require.NoError(t, h.Validate())
		require.NoError(t, h.Validate())
	})

	t.Run("Range count disagrees with numArrays", func(t *testing.T) {
		h := valid(t)
		h.Ranges = h.Ranges[:2]
		require.ErrorIs(t, h.Validate(), errs.ErrBoundsViolation)
	})

	t.Run("Misaligned range begin", func(t *testing.T) {
		h := valid(t)
		h.Ranges[1].Begin++
		require.ErrorIs(t, h.Validate(), errs.ErrMisalignedOffset)
	})

	t.Run("Range before data region", func(t *testing.T) {
		h := valid(t)
		h.Ranges[0].Begin = 32
		require.ErrorIs(t, h.Validate(), errs.ErrRangeOutOfBounds)
	})

	t.Run("Range past data end", func(t *testing.T) {
		h := valid(t)
		h.Ranges[2].End = h.Preamble.DataEnd + 1
		require.ErrorIs(t, h.Validate(), errs.ErrRangeOutOfBounds)
	})

	t.Run("End before begin", func(t *testing.T) {
		h := valid(t)
		h.Ranges[1].End = h.Ranges[1].Begin - 32
		require.ErrorIs(t, h.Validate(), errs.ErrRangeOutOfBounds)
	})

	t.Run("Overlapping ranges", func(t *testing.T) {
		h := valid(t)
		h.Ranges[2].Begin = h.Ranges[1].Begin
		require.ErrorIs(t, h.Validate(), errs.ErrRangeOverlap)
	})

	t.Run("Name count mismatch", func(t *testing.T) {
		h := valid(t)
		h.Names = h.Names[:1]
		require.ErrorIs(t, h.Validate(), errs.ErrNameCountMismatch)
	})

	t.Run("Bad magic wins over bad ranges", func(t *testing.T) {
		h := valid(t)
		h.Preamble.Magic = 0
		h.Ranges[1].Begin++
		require.ErrorIs(t, h.Validate(), errs.ErrMagicMismatch)
	})
}
