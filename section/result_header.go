package section

import (
	"fmt"

	"github.com/arloliu/diffcore/endian"
	"github.com/arloliu/diffcore/errs"
)

// ResultHeader is the fixed-size header at the start of a result buffer.
type ResultHeader struct {
	MajorVersion uint16
	MinorVersion uint16
	EntryCount   uint32
	TotalLength  uint64
}

// NewResultHeader creates a header for the current format version.
// EntryCount and TotalLength are patched when serialization finishes.
func NewResultHeader() ResultHeader {
	return ResultHeader{
		MajorVersion: FormatVersionMajor,
		MinorVersion: FormatVersionMinor,
	}
}

// Parse parses the header from data.
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than HeaderSize,
// and errs.ErrUnsupportedVersion if the major version does not match.
func (h *ResultHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.MajorVersion = engine.Uint16(data[0:2])
	h.MinorVersion = engine.Uint16(data[2:4])
	h.EntryCount = engine.Uint32(data[4:8])
	h.TotalLength = engine.Uint64(data[8:16])

	if h.MajorVersion != FormatVersionMajor {
		return fmt.Errorf("%w: major %d, expected %d", errs.ErrUnsupportedVersion, h.MajorVersion, FormatVersionMajor)
	}

	return nil
}

// AppendTo serializes the header onto dst and returns the extended slice.
func (h ResultHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = engine.AppendUint16(dst, h.MajorVersion)
	dst = engine.AppendUint16(dst, h.MinorVersion)
	dst = engine.AppendUint32(dst, h.EntryCount)
	dst = engine.AppendUint64(dst, h.TotalLength)

	return dst
}

// Bytes serializes the header into a fresh slice.
func (h ResultHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// PatchCounts rewrites EntryCount and TotalLength in an already
// serialized buffer. buf must start with a header written by AppendTo.
func PatchCounts(buf []byte, entryCount uint32, totalLength uint64) {
	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(buf[4:8], entryCount)
	engine.PutUint64(buf[8:16], totalLength)
}
