package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint32(32*1024*1024), cfg.MaxMemoryBytes)
	assert.Equal(t, uint32(64*1024*1024), cfg.MaxInputSize)
	assert.Equal(t, uint32(100_000), cfg.MaxObjectKeys)
	assert.Equal(t, format.ArrayModeIndex, cfg.ArrayDiffMode)
	assert.Equal(t, uint16(64), cfg.HashWindowSize)
	assert.Equal(t, uint32(1024), cfg.MaxFullArraySize)
	assert.Equal(t, format.ComputeModeLatency, cfg.ComputeMode)
	require.NoError(t, cfg.Validate())
}

func TestEdgeConfig(t *testing.T) {
	cfg := EdgeConfig()
	assert.Equal(t, uint32(16*1024*1024), cfg.MaxMemoryBytes)
	assert.Equal(t, uint32(32*1024*1024), cfg.MaxInputSize)
	assert.Equal(t, uint32(50_000), cfg.MaxObjectKeys)
	assert.Equal(t, uint16(32), cfg.HashWindowSize)
	assert.Equal(t, uint32(512), cfg.MaxFullArraySize)
	require.NoError(t, cfg.Validate())
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{
		MaxMemoryBytes:   1 << 20,
		MaxInputSize:     2 << 20,
		MaxObjectKeys:    1234,
		ArrayDiffMode:    format.ArrayModeHashWindow,
		HashWindowSize:   128,
		MaxFullArraySize: 99,
		ComputeMode:      format.ComputeModeThroughput,
	}

	buf := cfg.Bytes()
	require.Len(t, buf, ConfigSize)

	parsed, err := ParseConfig(buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestConfigBytesLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArrayDiffMode = format.ArrayModeFull
	cfg.ComputeMode = format.ComputeModeThroughput

	buf := cfg.Bytes()
	assert.Equal(t, byte(2), buf[12], "array mode at offset 12")
	assert.Equal(t, byte(64), buf[13], "hash window low byte at offset 13")
	assert.Equal(t, byte(1), buf[19], "compute mode at offset 19")
}

func TestParseConfigEmptySelectsDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig(make([]byte, 10))
	require.ErrorIs(t, err, errs.ErrConfigTooShort)

	bad := DefaultConfig()
	bad.ArrayDiffMode = format.ArrayDiffMode(7)
	_, err = ParseConfig(bad.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidArrayMode)

	bad = DefaultConfig()
	bad.ComputeMode = format.ComputeMode(9)
	_, err = ParseConfig(bad.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidComputeMode)

	bad = DefaultConfig()
	bad.MaxInputSize = 0
	_, err = ParseConfig(bad.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	bad = DefaultConfig()
	bad.HashWindowSize = 0
	_, err = ParseConfig(bad.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}
