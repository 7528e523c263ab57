package compress

// ZstdCompressor backs CompressionZstd, for archival of diff records
// where ratio matters more than speed.
//
// Two implementations exist behind build tags: a cgo binding when cgo is
// available, and a pure-Go fallback otherwise. Both produce standard
// Zstandard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
