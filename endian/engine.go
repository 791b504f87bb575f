// Package endian provides byte order utilities for BFAST header encoding
// and decoding.
//
// BFAST headers are written in the byte order of the producing platform, and
// a reader detects which order was used from the magic sentinel. This package
// combines encoding/binary's ByteOrder and AppendByteOrder interfaces into a
// single EndianEngine interface so the section codecs can decode a header
// with either order through one value.
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order. The
// writer encodes header fields in native order; a reader recovers the
// order from the magic sentinel.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// GetLittleEndianEngine returns the little-endian engine, the standard order
// for BFAST streams produced on little-endian platforms.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, used when a reader
// encounters the byte-swapped magic sentinel.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
