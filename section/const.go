package section

// Wire constants for the BFAST container layout.
const (
	// MagicNumber is the BFAST sentinel as decoded from a stream written in
	// the reader's expected byte order: low byte 0xA5, second byte 0xBF,
	// remaining six bytes zero.
	MagicNumber uint64 = 0xBFA5

	// MagicNumberSwapped is the exact byte reversal of MagicNumber. A magic
	// field decoding to this value means the stream was written with the
	// opposite byte order and every header field must be decoded with the
	// opposite-endian engine. Payload bytes are never converted.
	MagicNumberSwapped uint64 = 0xA5BF << 48

	// PreambleSize is the fixed byte size of the stream preamble.
	PreambleSize = 32

	// RangeSize is the fixed byte size of one range table entry.
	RangeSize = 16
)
