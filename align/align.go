// Package align provides the 32-byte alignment arithmetic used throughout
// the BFAST format.
//
// Every buffer in a BFAST stream, including the name blob, starts on a
// 32-byte boundary so that consumers on aligned platforms can reinterpret
// payload bytes as typed arrays without copying. All offset math in the
// section and blob packages goes through this package.
package align

// Alignment is the BFAST alignment unit in bytes. All buffer start offsets
// and region boundaries are rounded up to multiples of this value.
const Alignment = 32

// IsAligned reports whether n is a multiple of the alignment unit.
func IsAligned(n uint64) bool {
	return n%Alignment == 0
}

// NextAligned returns the smallest aligned value >= n.
// Returns n unchanged if it is already aligned.
func NextAligned(n uint64) uint64 {
	return n + Padding(n)
}

// Padding returns the number of zero bytes needed to advance n to the next
// aligned offset. The result is always in [0, Alignment).
func Padding(n uint64) uint64 {
	return (Alignment - n%Alignment) % Alignment
}
