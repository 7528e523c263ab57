// Package hash provides the two 64-bit hash functions used by diffcore.
//
// Fingerprint is the stable FNV-1a fingerprint of raw value bytes; it is
// part of the diff contract and must never change. ID is an xxHash64
// convenience used only for in-memory interner probes, where speed matters
// and the value never leaves the process.
package hash

import "github.com/cespare/xxhash/v2"

const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3
)

// Fingerprint computes the 64-bit FNV-1a hash of data.
//
// The fingerprint is used only for inequality: differing fingerprints
// guarantee differing bytes, while equal fingerprints require a byte
// comparison before two spans are treated as equal.
func Fingerprint(data []byte) uint64 {
	h := uint64(fnvOffset)
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime
	}

	return h
}

// ID computes the xxHash64 of the given bytes.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}
