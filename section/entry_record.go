package section

import (
	"fmt"

	"github.com/arloliu/diffcore/endian"
	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
)

// EntryRecord is the 32-byte wire form of one diff entry. The PathID
// field is 64 bits on the wire; the upper 32 bits are reserved and must
// be zero in the current version.
type EntryRecord struct {
	Op          format.DiffOp
	PathID      uint64
	LeftOffset  uint32
	LeftLen     uint32
	RightOffset uint32
	RightLen    uint32
}

// Parse parses one entry record from data.
func (e *EntryRecord) Parse(data []byte) error {
	if len(data) < EntrySize {
		return fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidEntrySize, EntrySize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	e.Op = format.DiffOp(data[0])
	e.PathID = engine.Uint64(data[8:16])
	e.LeftOffset = engine.Uint32(data[16:20])
	e.LeftLen = engine.Uint32(data[20:24])
	e.RightOffset = engine.Uint32(data[24:28])
	e.RightLen = engine.Uint32(data[28:32])

	if !e.Op.Valid() {
		return fmt.Errorf("%w: unknown op %d", errs.ErrInvalidResultBuffer, data[0])
	}

	return nil
}

// AppendTo serializes the record onto dst and returns the extended slice.
func (e EntryRecord) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = append(dst, byte(e.Op))
	for i := 0; i < entryReservedBytes; i++ {
		dst = append(dst, 0)
	}
	dst = engine.AppendUint64(dst, e.PathID)
	dst = engine.AppendUint32(dst, e.LeftOffset)
	dst = engine.AppendUint32(dst, e.LeftLen)
	dst = engine.AppendUint32(dst, e.RightOffset)
	dst = engine.AppendUint32(dst, e.RightLen)

	return dst
}

// Bytes serializes the record into a fresh slice.
func (e EntryRecord) Bytes() []byte {
	return e.AppendTo(make([]byte, 0, EntrySize))
}

// ParseResult validates buf and returns its header and entry records.
func ParseResult(buf []byte) (ResultHeader, []EntryRecord, error) {
	var h ResultHeader
	if err := h.Parse(buf); err != nil {
		return h, nil, err
	}

	want := HeaderSize + int(h.EntryCount)*EntrySize
	if h.TotalLength != uint64(want) || len(buf) < want {
		return h, nil, fmt.Errorf("%w: header declares %d entries / %d bytes, buffer has %d bytes",
			errs.ErrInvalidResultBuffer, h.EntryCount, h.TotalLength, len(buf))
	}

	entries := make([]EntryRecord, h.EntryCount)
	for i := range entries {
		off := HeaderSize + i*EntrySize
		if err := entries[i].Parse(buf[off : off+EntrySize]); err != nil {
			return h, nil, err
		}
	}

	return h, entries, nil
}
