package engine

import (
	"fmt"

	"github.com/arloliu/diffcore/endian"
	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
)

// ConfigSize is the size of the binary configuration record in bytes.
const ConfigSize = 20

// Default configuration values.
const (
	DefaultMaxMemoryBytes   = 32 * 1024 * 1024
	DefaultMaxInputSize     = 64 * 1024 * 1024
	DefaultMaxObjectKeys    = 100_000
	DefaultHashWindowSize   = 64
	DefaultMaxFullArraySize = 1024
)

// Config is the engine configuration snapshot.
//
// The binary form is a 20-byte little-endian record:
//
//	offset 0  u32 max_memory_bytes
//	offset 4  u32 max_input_size
//	offset 8  u32 max_object_keys
//	offset 12 u8  array_diff_mode
//	offset 13 u16 hash_window_size
//	offset 15 u32 max_full_array_size
//	offset 19 u8  compute_mode
type Config struct {
	// MaxMemoryBytes bounds the serialized result buffer.
	MaxMemoryBytes uint32
	// MaxInputSize bounds the combined committed bytes of both sides.
	MaxInputSize uint32
	// MaxObjectKeys bounds the keys declared since the most recent object
	// open; the count restarts at every '{'. Zero disables the guard.
	MaxObjectKeys uint32
	// ArrayDiffMode selects the array alignment strategy. Only
	// ArrayModeIndex is implemented; the other modes are reserved.
	ArrayDiffMode format.ArrayDiffMode
	// HashWindowSize is the window for the reserved HashWindow mode.
	HashWindowSize uint16
	// MaxFullArraySize is the array bound for the reserved Full mode.
	MaxFullArraySize uint32
	// ComputeMode selects the tokenizer scanning strategy.
	ComputeMode format.ComputeMode
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxMemoryBytes:   DefaultMaxMemoryBytes,
		MaxInputSize:     DefaultMaxInputSize,
		MaxObjectKeys:    DefaultMaxObjectKeys,
		ArrayDiffMode:    format.ArrayModeIndex,
		HashWindowSize:   DefaultHashWindowSize,
		MaxFullArraySize: DefaultMaxFullArraySize,
		ComputeMode:      format.ComputeModeLatency,
	}
}

// EdgeConfig returns a configuration with halved limits for
// memory-constrained embeddings.
func EdgeConfig() Config {
	return Config{
		MaxMemoryBytes:   16 * 1024 * 1024,
		MaxInputSize:     32 * 1024 * 1024,
		MaxObjectKeys:    50_000,
		ArrayDiffMode:    format.ArrayModeIndex,
		HashWindowSize:   32,
		MaxFullArraySize: 512,
		ComputeMode:      format.ComputeModeLatency,
	}
}

// ParseConfig decodes the binary configuration record.
//
// An empty record selects all defaults. A non-empty record shorter than
// ConfigSize is rejected, as are unknown mode bytes, a zero memory or input
// limit, and a zero hash window size.
func ParseConfig(data []byte) (Config, error) {
	if len(data) == 0 {
		return DefaultConfig(), nil
	}
	if len(data) < ConfigSize {
		return Config{}, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrConfigTooShort, ConfigSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	cfg := Config{
		MaxMemoryBytes:   engine.Uint32(data[0:4]),
		MaxInputSize:     engine.Uint32(data[4:8]),
		MaxObjectKeys:    engine.Uint32(data[8:12]),
		ArrayDiffMode:    format.ArrayDiffMode(data[12]),
		HashWindowSize:   engine.Uint16(data[13:15]),
		MaxFullArraySize: engine.Uint32(data[15:19]),
		ComputeMode:      format.ComputeMode(data[19]),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Bytes serializes the configuration into the 20-byte binary record.
func (c Config) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, ConfigSize)
	buf = engine.AppendUint32(buf, c.MaxMemoryBytes)
	buf = engine.AppendUint32(buf, c.MaxInputSize)
	buf = engine.AppendUint32(buf, c.MaxObjectKeys)
	buf = append(buf, byte(c.ArrayDiffMode))
	buf = engine.AppendUint16(buf, c.HashWindowSize)
	buf = engine.AppendUint32(buf, c.MaxFullArraySize)
	buf = append(buf, byte(c.ComputeMode))

	return buf
}

// Validate checks limits and mode bytes.
func (c Config) Validate() error {
	if !c.ArrayDiffMode.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidArrayMode, c.ArrayDiffMode)
	}
	if !c.ComputeMode.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidComputeMode, c.ComputeMode)
	}
	if c.MaxMemoryBytes == 0 || c.MaxInputSize == 0 {
		return fmt.Errorf("%w: memory and input limits must be non-zero", errs.ErrInvalidConfig)
	}
	if c.HashWindowSize == 0 {
		return fmt.Errorf("%w: hash window size must be non-zero", errs.ErrInvalidConfig)
	}

	return nil
}
