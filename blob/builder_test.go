package blob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("Finish matches Pack", func(t *testing.T) {
		buffers := []Buffer{
			{Name: "xs", Data: []byte{1, 2, 3}},
			{Name: "ys", Data: []byte{4, 5}},
		}

		b := NewBuilder()
		b.Add("xs", buffers[0].Data).AddBuffer(buffers[1])
		require.Equal(t, 2, b.Len())

		fromBuilder, err := b.Finish()
		require.NoError(t, err)

		fromPack, err := Pack(buffers)
		require.NoError(t, err)
		require.Equal(t, fromPack, fromBuilder)
	})

	t.Run("WriteTo streams the same bytes", func(t *testing.T) {
		b := NewBuilder().Add("data", bytes.Repeat([]byte{0x5A}, 100))

		packed, err := b.Finish()
		require.NoError(t, err)

		var streamed bytes.Buffer
		n, err := b.WriteTo(&streamed)
		require.NoError(t, err)
		require.Equal(t, int64(len(packed)), n)
		require.Equal(t, packed, streamed.Bytes())
	})

	t.Run("Zero value and empty builder", func(t *testing.T) {
		var b Builder
		require.Zero(t, b.Len())

		data, err := b.Finish()
		require.NoError(t, err)

		decoded, err := Unpack(data)
		require.NoError(t, err)
		require.Zero(t, decoded.BufferCount())
	})

	t.Run("Reusable after Finish", func(t *testing.T) {
		b := NewBuilder().Add("one", []byte{1})
		first, err := b.Finish()
		require.NoError(t, err)

		b.Add("two", []byte{2})
		second, err := b.Finish()
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		decoded, err := Unpack(second)
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two"}, decoded.Names())
	})
}
