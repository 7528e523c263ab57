// Package diff joins two token streams by path identity and produces the
// ordered entry list.
package diff

import (
	"bytes"

	"github.com/arloliu/diffcore/format"
	"github.com/arloliu/diffcore/path"
	"github.com/arloliu/diffcore/token"
)

// Entry describes one differing location. For Added entries the left
// fields are zero; for Removed entries the right fields are zero. Offsets
// reference the committed bytes of the corresponding side.
type Entry struct {
	Op          format.DiffOp
	PathID      path.PathID
	LeftOffset  uint32
	LeftLen     uint32
	RightOffset uint32
	RightLen    uint32
}

// Differ computes the entry list for two completed token streams. It
// retains its entry storage across Clear so a long-lived engine emits no
// allocations in steady state.
type Differ struct {
	entries []Entry
}

// Compute joins the streams and returns the ordered entry list.
//
// The right stream is traversed first: every right value token with a
// differing left counterpart emits Modified, and every right value token
// without one emits Added, both in right emission order. The left stream
// is then traversed, emitting Removed for value tokens absent on the
// right, in left emission order. Container events produce no entries.
//
// Equal fingerprints alone do not suppress an entry: the spans are
// re-verified by length and raw bytes, so a fingerprint collision between
// differing values still yields Modified. A string and a bare literal with
// the same text (a change of value type) also yield Modified.
func (d *Differ) Compute(left, right *token.Tokenizer, leftBytes, rightBytes []byte) []Entry {
	d.entries = d.entries[:0]

	leftTokens := left.Tokens()
	leftValues := left.Values()
	rightValues := right.Values()

	for _, rt := range right.Tokens() {
		if rt.Event != token.Value {
			continue
		}

		slot := leftValues.Get(rt.PathID)
		if slot == 0 {
			d.entries = append(d.entries, Entry{
				Op:          format.OpAdded,
				PathID:      rt.PathID,
				RightOffset: rt.RawOffset,
				RightLen:    rt.RawLen,
			})

			continue
		}

		lt := leftTokens[slot-1]
		if !modified(lt, rt, leftBytes, rightBytes) {
			continue
		}

		d.entries = append(d.entries, Entry{
			Op:          format.OpModified,
			PathID:      rt.PathID,
			LeftOffset:  lt.RawOffset,
			LeftLen:     lt.RawLen,
			RightOffset: rt.RawOffset,
			RightLen:    rt.RawLen,
		})
	}

	for _, lt := range left.Tokens() {
		if lt.Event != token.Value {
			continue
		}
		if rightValues.Get(lt.PathID) != 0 {
			continue
		}

		d.entries = append(d.entries, Entry{
			Op:         format.OpRemoved,
			PathID:     lt.PathID,
			LeftOffset: lt.RawOffset,
			LeftLen:    lt.RawLen,
		})
	}

	return d.entries
}

func modified(lt, rt token.Token, leftBytes, rightBytes []byte) bool {
	if lt.ValueHash != rt.ValueHash {
		return true
	}
	if lt.RawLen != rt.RawLen {
		return true
	}
	// String spans exclude their quotes, so the byte before a string span
	// is its opening quote; this separates "1" from the bare literal 1.
	lStr := lt.RawOffset > 0 && leftBytes[lt.RawOffset-1] == '"'
	rStr := rt.RawOffset > 0 && rightBytes[rt.RawOffset-1] == '"'
	if lStr != rStr {
		return true
	}

	ls := leftBytes[lt.RawOffset : lt.RawOffset+lt.RawLen]
	rs := rightBytes[rt.RawOffset : rt.RawOffset+rt.RawLen]

	return !bytes.Equal(ls, rs)
}

// Entries returns the result of the last Compute. Valid until the next
// Compute or Clear.
func (d *Differ) Entries() []Entry {
	return d.entries
}

// Clear drops the computed entries while keeping capacity.
func (d *Differ) Clear() {
	d.entries = d.entries[:0]
}
