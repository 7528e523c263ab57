package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
	"github.com/arloliu/diffcore/internal/options"
)

// Option represents a functional option for configuring an Engine.
type Option = options.Option[*Engine]

func applyOptions(e *Engine, opts ...Option) error {
	return options.Apply(e, opts...)
}

// WithConfig replaces the whole configuration snapshot.
func WithConfig(cfg Config) Option {
	return options.NoError(func(e *Engine) {
		e.cfg = cfg
	})
}

// WithConfigBytes decodes the 20-byte binary configuration record. An
// empty record selects all defaults.
func WithConfigBytes(data []byte) Option {
	return options.New(func(e *Engine) error {
		cfg, err := ParseConfig(data)
		if err != nil {
			return err
		}
		e.cfg = cfg

		return nil
	})
}

// WithMaxMemoryBytes bounds the serialized result buffer.
func WithMaxMemoryBytes(n uint32) Option {
	return options.NoError(func(e *Engine) {
		e.cfg.MaxMemoryBytes = n
	})
}

// WithMaxInputSize bounds the combined committed bytes of both sides.
func WithMaxInputSize(n uint32) Option {
	return options.NoError(func(e *Engine) {
		e.cfg.MaxInputSize = n
	})
}

// WithMaxObjectKeys bounds the keys declared since the most recent object
// open; the count restarts at every '{'.
func WithMaxObjectKeys(n uint32) Option {
	return options.NoError(func(e *Engine) {
		e.cfg.MaxObjectKeys = n
	})
}

// WithArrayDiffMode selects the array alignment strategy.
func WithArrayDiffMode(m format.ArrayDiffMode) Option {
	return options.New(func(e *Engine) error {
		if !m.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidArrayMode, m)
		}
		e.cfg.ArrayDiffMode = m

		return nil
	})
}

// WithComputeMode selects the tokenizer scanning strategy.
func WithComputeMode(m format.ComputeMode) Option {
	return options.New(func(e *Engine) error {
		if !m.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidComputeMode, m)
		}
		e.cfg.ComputeMode = m

		return nil
	})
}

// WithHashWindowSize sets the window for the reserved HashWindow mode.
func WithHashWindowSize(n uint16) Option {
	return options.NoError(func(e *Engine) {
		e.cfg.HashWindowSize = n
	})
}

// WithMaxFullArraySize sets the array bound for the reserved Full mode.
func WithMaxFullArraySize(n uint32) Option {
	return options.NoError(func(e *Engine) {
		e.cfg.MaxFullArraySize = n
	})
}

// WithLogger attaches a zerolog logger for debug tracing. The default is
// a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(e *Engine) {
		e.logger = logger
	})
}

// WithResultCompression sets the codec used by Export.
func WithResultCompression(ct format.CompressionType) Option {
	return options.NoError(func(e *Engine) {
		e.exportCompression = ct
	})
}
