// Package blob provides the read and write protocol for BFAST streams.
//
// BFAST is a compression-free binary container for a sequence of named byte
// buffers. Every buffer starts on a 32-byte boundary so consumers can
// reinterpret payloads as typed arrays without copying.
//
// # Stream Layout
//
// A stream is laid out as:
//
//	Preamble     32 bytes    magic, dataStart, dataEnd, numArrays
//	Range table  16*N bytes  (begin, end) pair per buffer
//	Padding      0-31 bytes  zeros to the next 32-byte boundary
//	Name blob    variable    NUL-terminated UTF-8 names, concatenated
//	Padding      0-31 bytes
//	Buffer 1..N  variable    raw payload, each followed by 0-31 zero bytes
//
// The name blob itself is buffer index 0 of the range table.
//
// # Streaming API
//
// Write serializes buffers against an abstract sink; the caller supplies an
// EmitFunc that produces each buffer's payload:
//
//	_, err := blob.Write(w, names, sizes, func(w io.Writer, i int, name string, size int64) error {
//	    _, err := w.Write(payloads[i])
//	    return err
//	})
//
// Read is the mirror image; the caller materializes each buffer from the
// source:
//
//	_, err := blob.Read(r, func(src io.Reader, i int, name string, count uint64) error {
//	    data := make([]byte, count)
//	    _, err := io.ReadFull(src, data)
//	    return err
//	})
//
// # In-Memory API
//
// Pack and Unpack are one-call equivalents over byte slices, and Builder
// accumulates buffers before a final Pack:
//
//	data, _ := blob.Pack([]blob.Buffer{{Name: "xs", Data: xs}})
//	decoded, _ := blob.Unpack(data)
//	xs, _ := decoded.Get("xs")
//
// All operations are strictly sequential and synchronous; the codec never
// retains references to caller-owned payload bytes.
package blob
