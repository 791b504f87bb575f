package blob

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cdiggins/TASF/errs"
	"github.com/cdiggins/TASF/internal/hash"
	"github.com/cdiggins/TASF/internal/pool"
	"github.com/cdiggins/TASF/section"
)

// Buffer is the boundary tuple of the codec: a named byte payload. The
// codec never retains references to Data after a call returns.
type Buffer struct {
	Name string
	Data []byte
}

// Blob is a fully decoded BFAST container: the validated header plus every
// buffer payload, in stream order. It is immutable after Unpack.
//
// Name lookups go through an xxHash64 index so repeated Get calls avoid
// rehashing cost on the map key. The index is in-memory convenience only;
// the wire format carries nothing beyond the flat range table.
type Blob struct {
	header  section.Header
	buffers []Buffer
	byID    map[uint64]int
}

// Header returns the validated header the blob was decoded from.
func (b *Blob) Header() section.Header {
	return b.header
}

// BufferCount returns the number of data buffers.
func (b *Blob) BufferCount() int {
	return len(b.buffers)
}

// Buffers returns the decoded buffers in stream order. The returned slice
// is shared; callers must not modify it.
func (b *Blob) Buffers() []Buffer {
	return b.buffers
}

// Names returns the buffer names in stream order.
func (b *Blob) Names() []string {
	names := make([]string, len(b.buffers))
	for i, buf := range b.buffers {
		names[i] = buf.Name
	}

	return names
}

// Get returns the payload of the named buffer. When several buffers share
// a name, the first occurrence wins.
func (b *Blob) Get(name string) ([]byte, bool) {
	idx, ok := b.byID[hash.ID(name)]
	if !ok {
		return nil, false
	}

	// Guard against an xxHash collision between distinct names.
	if b.buffers[idx].Name != name {
		for _, buf := range b.buffers {
			if buf.Name == name {
				return buf.Data, true
			}
		}

		return nil, false
	}

	return b.buffers[idx].Data, true
}

// Has reports whether a buffer with the given name exists.
func (b *Blob) Has(name string) bool {
	_, ok := b.Get(name)

	return ok
}

// Pack serializes buffers into a single in-memory BFAST stream. It is the
// one-call equivalent of Write against a byte slice sink.
func Pack(buffers []Buffer) ([]byte, error) {
	names := make([]string, len(buffers))
	sizes := make([]int64, len(buffers))
	for i, buf := range buffers {
		names[i] = buf.Name
		sizes[i] = int64(len(buf.Data))
	}

	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	_, err := Write(out, names, sizes, func(w io.Writer, index int, _ string, _ int64) error {
		_, err := w.Write(buffers[index].Data)

		return err
	})
	if err != nil {
		return nil, err
	}

	return bytes.Clone(out.Bytes()), nil
}

// Unpack decodes a complete in-memory BFAST stream into a Blob, copying
// every payload out of data. It is the one-call equivalent of Read against
// a byte slice source.
func Unpack(data []byte) (*Blob, error) {
	// The declared stream size caps every payload allocation below; a
	// stream claiming more data than it carries is rejected up front.
	if len(data) >= section.PreambleSize {
		if _, err := sniffDataEnd(data); err != nil {
			return nil, err
		}
	}

	var buffers []Buffer
	header, err := Read(bytes.NewReader(data), func(src io.Reader, _ int, name string, count uint64) error {
		payload := make([]byte, count)
		if _, err := io.ReadFull(src, payload); err != nil {
			return err
		}
		buffers = append(buffers, Buffer{Name: name, Data: payload})

		return nil
	})
	if err != nil {
		return nil, err
	}

	blob := &Blob{
		header:  header,
		buffers: buffers,
		byID:    make(map[uint64]int, len(buffers)),
	}
	for i, buf := range buffers {
		id := hash.ID(buf.Name)
		if _, exists := blob.byID[id]; !exists {
			blob.byID[id] = i
		}
	}

	return blob, nil
}

// sniffDataEnd parses just enough of the preamble to compare the declared
// data end against the actual slice length.
func sniffDataEnd(data []byte) (uint64, error) {
	preamble, _, err := section.ParsePreamble(data[:section.PreambleSize])
	if err != nil {
		return 0, err
	}

	if preamble.DataEnd > uint64(len(data)) {
		return 0, fmt.Errorf("%w: dataEnd %d exceeds stream length %d",
			errs.ErrBoundsViolation, preamble.DataEnd, len(data))
	}

	return preamble.DataEnd, nil
}
