// Package path assigns dense integer identities to JSON locations.
//
// A location is identified by the chain of steps from the document root:
// object keys and array indices. Steps are interned to SegmentID values,
// and (parent, segment) pairs are interned to PathID values by PathArena.
// Both identities are dense and meaningful only within one engine
// generation; Clear restarts the numbering without releasing storage.
package path

import (
	"strconv"

	"github.com/arloliu/diffcore/internal/hash"
)

// SegmentID is the dense identity of a single path step. Key segments and
// index segments share one numbering space; segment 0 is the reserved
// empty placeholder.
type SegmentID uint32

// EmptySegmentID is the reserved sentinel for the root placeholder step.
const EmptySegmentID SegmentID = 0

// PathInterner maps object keys and array indices to SegmentID values.
//
// Keys are probed by their xxHash64 so the hot path never converts the
// raw bytes to a string. A probe hit is verified against the stored text;
// on the (rare) hash collision the key falls back to an exact-text map,
// so two distinct keys never share a SegmentID.
type PathInterner struct {
	keyIDs     map[uint64]SegmentID
	indexIDs   map[int]SegmentID
	exactKeys  map[string]SegmentID // collision fallback, usually empty
	segments   []string             // SegmentID → text; index segments carry brackets
	numScratch []byte
}

// NewPathInterner creates an interner with the empty sentinel seated at id 0.
func NewPathInterner() *PathInterner {
	pi := &PathInterner{
		keyIDs:   make(map[uint64]SegmentID),
		indexIDs: make(map[int]SegmentID),
		segments: make([]string, 0, 64),
	}
	pi.segments = append(pi.segments, "")

	return pi
}

// InternKey returns the SegmentID for an object key given as raw UTF-8
// bytes, interning it on first sight.
func (pi *PathInterner) InternKey(key []byte) SegmentID {
	h := hash.ID(key)
	if id, ok := pi.keyIDs[h]; ok {
		if pi.segments[id] == string(key) {
			return id
		}
		// Hash collision: different key text, same xxHash64. Resolve
		// through the exact-text map from here on.
		return pi.internKeyExact(key)
	}

	id := SegmentID(len(pi.segments))
	pi.segments = append(pi.segments, string(key))
	pi.keyIDs[h] = id

	return id
}

func (pi *PathInterner) internKeyExact(key []byte) SegmentID {
	if pi.exactKeys == nil {
		pi.exactKeys = make(map[string]SegmentID)
	}
	if id, ok := pi.exactKeys[string(key)]; ok {
		return id
	}

	id := SegmentID(len(pi.segments))
	text := string(key)
	pi.segments = append(pi.segments, text)
	pi.exactKeys[text] = id

	return id
}

// InternIndex returns the SegmentID for an array index, interning the
// bracketed text "[n]" on first sight.
func (pi *PathInterner) InternIndex(n int) SegmentID {
	if id, ok := pi.indexIDs[n]; ok {
		return id
	}

	pi.numScratch = pi.numScratch[:0]
	pi.numScratch = append(pi.numScratch, '[')
	pi.numScratch = strconv.AppendInt(pi.numScratch, int64(n), 10)
	pi.numScratch = append(pi.numScratch, ']')

	id := SegmentID(len(pi.segments))
	pi.segments = append(pi.segments, string(pi.numScratch))
	pi.indexIDs[n] = id

	return id
}

// SegmentText returns the interned text for id. Index segments include
// their brackets. Returns "" for unknown ids.
func (pi *PathInterner) SegmentText(id SegmentID) string {
	if int(id) >= len(pi.segments) {
		return ""
	}

	return pi.segments[id]
}

// IsIndex reports whether id names an array-index segment.
func (pi *PathInterner) IsIndex(id SegmentID) bool {
	text := pi.SegmentText(id)
	return len(text) > 0 && text[0] == '['
}

// Len returns the number of interned segments including the sentinel.
func (pi *PathInterner) Len() int {
	return len(pi.segments)
}

// Clear empties all tables and re-seats the sentinel empty string at id 0.
// Map buckets and the segment slice keep their capacity.
func (pi *PathInterner) Clear() {
	clear(pi.keyIDs)
	clear(pi.indexIDs)
	clear(pi.exactKeys)
	pi.segments = pi.segments[:0]
	pi.segments = append(pi.segments, "")
}
