package section

import (
	"fmt"

	"github.com/arloliu/diffcore/endian"
	"github.com/arloliu/diffcore/errs"
)

// Symbol payload layout: u32 count, then per entry u32 length + UTF-8
// path text, in result entry order.

// AppendSymbolCount writes the payload prefix onto dst.
func AppendSymbolCount(dst []byte, count uint32) []byte {
	return endian.GetLittleEndianEngine().AppendUint32(dst, count)
}

// AppendSymbol writes one length-prefixed path string onto dst.
func AppendSymbol(dst []byte, pathText []byte) []byte {
	dst = endian.GetLittleEndianEngine().AppendUint32(dst, uint32(len(pathText)))
	return append(dst, pathText...)
}

// ParseSymbolPayload decodes a symbol payload into path strings.
func ParseSymbolPayload(data []byte) ([]string, error) {
	engine := endian.GetLittleEndianEngine()
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: symbol payload too short", errs.ErrInvalidResultBuffer)
	}

	count := engine.Uint32(data[0:4])
	offset := 4
	out := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("%w: truncated symbol length at entry %d", errs.ErrInvalidResultBuffer, i)
		}
		n := int(engine.Uint32(data[offset : offset+4]))
		offset += 4
		if offset+n > len(data) {
			return nil, fmt.Errorf("%w: truncated symbol text at entry %d", errs.ErrInvalidResultBuffer, i)
		}
		out = append(out, string(data[offset:offset+n]))
		offset += n
	}

	return out, nil
}
