package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeNames(t *testing.T) {
	t.Run("Empty list", func(t *testing.T) {
		require.Empty(t, EncodeNames(nil))
		require.Empty(t, EncodeNames([]string{}))
	})

	t.Run("Single name", func(t *testing.T) {
		require.Equal(t, []byte("positions\x00"), EncodeNames([]string{"positions"}))
	})

	t.Run("Multiple names preserve order", func(t *testing.T) {
		got := EncodeNames([]string{"xs", "ys", "indices"})
		require.Equal(t, []byte("xs\x00ys\x00indices\x00"), got)
	})

	t.Run("Empty string is a valid name", func(t *testing.T) {
		require.Equal(t, []byte{0}, EncodeNames([]string{""}))
		require.Equal(t, []byte("a\x00\x00b\x00"), EncodeNames([]string{"a", "", "b"}))
	})

	t.Run("UTF-8 names", func(t *testing.T) {
		got := EncodeNames([]string{"café", "日本語"})
		require.Equal(t, []byte("café\x00日本語\x00"), got)
	})
}

func TestEncodedNamesSize(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  uint64
	}{
		{"empty", nil, 0},
		{"single", []string{"xs"}, 3},
		{"multiple", []string{"xs", "ys"}, 6},
		{"empty string name", []string{""}, 1},
		{"multibyte runes", []string{"café"}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodedNamesSize(tt.names))
			require.Equal(t, tt.want, uint64(len(EncodeNames(tt.names))))
		})
	}
}

func TestDecodeNames(t *testing.T) {
	t.Run("Empty blob", func(t *testing.T) {
		require.Empty(t, DecodeNames(nil))
		require.Empty(t, DecodeNames([]byte{}))
	})

	t.Run("Terminated names", func(t *testing.T) {
		names := DecodeNames([]byte("xs\x00ys\x00"))
		require.Equal(t, []string{"xs", "ys"}, names)
	})

	t.Run("Trailing fragment without NUL is emitted", func(t *testing.T) {
		names := DecodeNames([]byte("xs\x00ys"))
		require.Equal(t, []string{"xs", "ys"}, names)
	})

	t.Run("Lone NUL is one empty name", func(t *testing.T) {
		require.Equal(t, []string{""}, DecodeNames([]byte{0}))
	})
}

func TestNameTableRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"positions"},
		{"xs", "ys"},
		{"", "", ""},
		{"a", "", "b"},
		{"café", "日本語", "plain"},
	}

	for _, names := range cases {
		got := DecodeNames(EncodeNames(names))
		require.Equal(t, len(names), len(got))
		for i := range names {
			require.Equal(t, names[i], got[i])
		}
	}
}
