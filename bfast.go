// Package bfast implements the BFAST binary container format: a
// compression-free stream of named byte buffers with 32-byte alignment
// guarantees suitable for zero-copy consumption.
//
// A BFAST stream starts with a fixed 32-byte preamble, followed by a flat
// range table locating every buffer, the NUL-delimited name blob, and the
// raw buffer payloads, each beginning on a 32-byte boundary.
//
// # Basic Usage
//
// Packing buffers into an in-memory stream:
//
//	import bfast "github.com/cdiggins/TASF"
//
//	data, err := bfast.Pack([]bfast.Buffer{
//	    {Name: "positions", Data: positionBytes},
//	    {Name: "indices", Data: indexBytes},
//	})
//
// Unpacking:
//
//	decoded, err := bfast.Unpack(data)
//	positions, ok := decoded.Get("positions")
//
// Accumulating buffers incrementally:
//
//	b := bfast.NewBuilder()
//	b.Add("positions", positionBytes)
//	b.Add("indices", indexBytes)
//	data, err := b.Finish()
//
// # Streaming
//
// For large payloads, Write and Read operate against abstract sinks and
// sources with caller-supplied callbacks producing or consuming each
// buffer's bytes; see the blob package for the callback contracts.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package, simplifying the most common use cases. For fine-grained control
// over headers and layout, use the blob and section packages directly.
package bfast

import (
	"io"

	"github.com/cdiggins/TASF/blob"
	"github.com/cdiggins/TASF/section"
)

// Buffer is a named byte payload, the unit of exchange across the codec
// boundary.
type Buffer = blob.Buffer

// Blob is a fully decoded BFAST container.
type Blob = blob.Blob

// Builder accumulates buffers before a final serialization.
type Builder = blob.Builder

// Pack serializes buffers into a single in-memory BFAST stream.
func Pack(buffers []Buffer) ([]byte, error) {
	return blob.Pack(buffers)
}

// Unpack decodes an in-memory BFAST stream into a Blob.
func Unpack(data []byte) (*Blob, error) {
	return blob.Unpack(data)
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return blob.NewBuilder()
}

// Write serializes a complete BFAST stream to a sink, invoking emit once
// per buffer to produce its payload bytes.
func Write(w io.Writer, names []string, sizes []int64, emit blob.EmitFunc) (int64, error) {
	return blob.Write(w, names, sizes, emit)
}

// Read consumes a complete BFAST stream from a source, invoking onBuffer
// once per buffer with the declared byte count.
func Read(r io.Reader, onBuffer blob.BufferFunc) (section.Header, error) {
	return blob.Read(r, onBuffer)
}

// ReadHeader parses and validates just the header section of a stream.
func ReadHeader(r io.Reader) (section.Header, error) {
	return blob.ReadHeader(r)
}
