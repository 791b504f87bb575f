// Package encoding implements the BFAST name table codec.
//
// Buffer names are stored in a single blob at buffer index 0: each name's
// UTF-8 bytes followed by one zero byte, concatenated in buffer order. The
// blob carries no count or length prefixes; the surrounding range table is
// authoritative for its byte length.
package encoding

import "bytes"

// EncodeNames packs an ordered list of buffer names into a NUL-delimited
// blob. Each name is written as its UTF-8 bytes followed by a single zero
// byte. An empty list yields an empty blob.
//
// Names must not contain embedded NUL bytes: a NUL inside a name shifts
// every later name by one slot when the blob is decoded, breaking the
// round-trip guarantee.
func EncodeNames(names []string) []byte {
	buf := make([]byte, 0, EncodedNamesSize(names))
	for _, name := range names {
		buf = append(buf, name...)
		buf = append(buf, 0)
	}

	return buf
}

// EncodedNamesSize returns the byte length EncodeNames would produce for
// the given names, without building the blob.
func EncodedNamesSize(names []string) uint64 {
	size := uint64(0)
	for _, name := range names {
		size += uint64(len(name)) + 1
	}

	return size
}

// DecodeNames unpacks a NUL-delimited name blob into its ordered list of
// names. An empty blob yields an empty list.
//
// A trailing fragment with no terminating NUL is tolerated and emitted as a
// final name. The writer always NUL-terminates, so such a fragment can only
// appear in streams produced elsewhere; the range table, not the blob, is
// authoritative for buffer counts, so a resulting count mismatch is still
// caught by header validation.
func DecodeNames(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}

	names := make([]string, 0, bytes.Count(data, []byte{0}))
	start := 0
	for i, b := range data {
		if b == 0 {
			names = append(names, string(data[start:i]))
			start = i + 1
		}
	}

	if start < len(data) {
		// Unterminated trailing fragment from a foreign writer.
		names = append(names, string(data[start:]))
	}

	return names
}
