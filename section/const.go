package section

const (
	// FormatVersionMajor is incremented on any backwards-incompatible layout change.
	FormatVersionMajor uint16 = 2
	// FormatVersionMinor is incremented on additive changes.
	FormatVersionMinor uint16 = 1

	// HeaderSize is the fixed result header size in bytes.
	HeaderSize = 16
	// EntrySize is the fixed diff entry record size in bytes.
	EntrySize = 32

	// entryReservedBytes pads the op byte so path_id lands on an 8-byte boundary.
	entryReservedBytes = 7
)
