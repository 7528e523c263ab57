// Package endian provides byte order utilities for the diffcore binary
// surfaces: the 20-byte configuration record, the result header, the
// fixed-size diff entry records, and the symbol payload.
//
// The package combines ByteOrder and AppendByteOrder from encoding/binary
// into a single EndianEngine interface so codecs can both read in place
// and append without a temporary scratch buffer.
//
// Every diffcore wire layout is little-endian; GetLittleEndianEngine is
// the engine used throughout. The big-endian engine exists only for
// tooling that needs to inspect foreign buffers.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so codecs
// written against EndianEngine interoperate with standard library code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by all
// diffcore wire formats.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
