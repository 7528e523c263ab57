package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/diffcore/errs"
)

func TestResultHeaderRoundTrip(t *testing.T) {
	h := NewResultHeader()
	h.EntryCount = 3
	h.TotalLength = HeaderSize + 3*EntrySize

	buf := h.Bytes()
	require.Len(t, buf, HeaderSize)

	var parsed ResultHeader
	require.NoError(t, parsed.Parse(buf))
	assert.Equal(t, h, parsed)
}

func TestResultHeaderLayout(t *testing.T) {
	h := NewResultHeader()
	h.EntryCount = 1
	h.TotalLength = 48

	buf := h.Bytes()
	// Little-endian field positions are part of the external contract.
	assert.Equal(t, []byte{2, 0}, buf[0:2], "major version")
	assert.Equal(t, []byte{1, 0}, buf[2:4], "minor version")
	assert.Equal(t, []byte{1, 0, 0, 0}, buf[4:8], "entry count")
	assert.Equal(t, []byte{48, 0, 0, 0, 0, 0, 0, 0}, buf[8:16], "total length")
}

func TestResultHeaderParseErrors(t *testing.T) {
	var h ResultHeader
	require.ErrorIs(t, h.Parse(make([]byte, 8)), errs.ErrInvalidHeaderSize)

	bad := NewResultHeader()
	bad.MajorVersion = 9
	require.ErrorIs(t, h.Parse(bad.Bytes()), errs.ErrUnsupportedVersion)
}

func TestPatchCounts(t *testing.T) {
	h := NewResultHeader()
	buf := h.Bytes()
	PatchCounts(buf, 7, 240)

	var parsed ResultHeader
	require.NoError(t, parsed.Parse(buf))
	assert.Equal(t, uint32(7), parsed.EntryCount)
	assert.Equal(t, uint64(240), parsed.TotalLength)
}
