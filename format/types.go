package format

type (
	// DiffOp identifies the kind of change recorded by a diff entry.
	DiffOp uint8

	// ArrayDiffMode selects the array alignment strategy.
	ArrayDiffMode uint8

	// ComputeMode selects the tokenizer scanning strategy.
	ComputeMode uint8

	// CompressionType identifies the codec used for result export.
	CompressionType uint8
)

const (
	OpAdded    DiffOp = 0 // OpAdded marks a value present only on the right side.
	OpRemoved  DiffOp = 1 // OpRemoved marks a value present only on the left side.
	OpModified DiffOp = 2 // OpModified marks a value whose bytes differ between sides.

	// ArrayModeIndex compares array elements by position. Fast, no reorder detection.
	ArrayModeIndex ArrayDiffMode = 0
	// ArrayModeHashWindow is reserved for rolling-hash window alignment.
	ArrayModeHashWindow ArrayDiffMode = 1
	// ArrayModeFull is reserved for full LCS alignment of small arrays.
	ArrayModeFull ArrayDiffMode = 2

	// ComputeModeLatency uses the scalar byte loop. Lowest per-call overhead.
	ComputeModeLatency ComputeMode = 0
	// ComputeModeThroughput enables word-at-a-time whitespace and string scanning.
	ComputeModeThroughput ComputeMode = 1

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (o DiffOp) String() string {
	switch o {
	case OpAdded:
		return "Added"
	case OpRemoved:
		return "Removed"
	case OpModified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is one of the defined diff operations.
func (o DiffOp) Valid() bool {
	return o <= OpModified
}

func (m ArrayDiffMode) String() string {
	switch m {
	case ArrayModeIndex:
		return "Index"
	case ArrayModeHashWindow:
		return "HashWindow"
	case ArrayModeFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined array diff modes.
func (m ArrayDiffMode) Valid() bool {
	return m <= ArrayModeFull
}

func (m ComputeMode) String() string {
	switch m {
	case ComputeModeLatency:
		return "Latency"
	case ComputeModeThroughput:
		return "Throughput"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined compute modes.
func (m ComputeMode) Valid() bool {
	return m <= ComputeModeThroughput
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
