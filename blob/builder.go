package blob

import "io"

// Builder accumulates named buffers and serializes them in one shot. It is
// a convenience over Pack/Write for callers that collect buffers
// incrementally; the zero value is ready to use.
//
// Builder is not safe for concurrent use.
type Builder struct {
	buffers []Buffer
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a named buffer. The payload is not copied; the caller must
// keep it unchanged until the builder is serialized. Returns the builder
// for chaining.
func (b *Builder) Add(name string, data []byte) *Builder {
	b.buffers = append(b.buffers, Buffer{Name: name, Data: data})

	return b
}

// AddBuffer appends an existing Buffer value.
func (b *Builder) AddBuffer(buf Buffer) *Builder {
	b.buffers = append(b.buffers, buf)

	return b
}

// Len returns the number of buffers added so far.
func (b *Builder) Len() int {
	return len(b.buffers)
}

// Finish serializes the accumulated buffers into an in-memory stream. The
// builder remains usable afterwards; adding more buffers and finishing
// again produces a fresh stream.
func (b *Builder) Finish() ([]byte, error) {
	return Pack(b.buffers)
}

// WriteTo serializes the accumulated buffers to a sink, streaming payloads
// without assembling the whole stream in memory first.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	names := make([]string, len(b.buffers))
	sizes := make([]int64, len(b.buffers))
	for i, buf := range b.buffers {
		names[i] = buf.Name
		sizes[i] = int64(len(buf.Data))
	}

	return Write(w, names, sizes, func(w io.Writer, index int, _ string, _ int64) error {
		_, err := w.Write(b.buffers[index].Data)

		return err
	})
}
