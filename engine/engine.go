// Package engine owns the diff pipeline: two ingestion buffers, two
// tokenizers, one path arena, and the differ, behind the
// commit/finalize/clear lifecycle.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/diffcore/compress"
	"github.com/arloliu/diffcore/diff"
	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
	"github.com/arloliu/diffcore/internal/pool"
	"github.com/arloliu/diffcore/path"
	"github.com/arloliu/diffcore/section"
	"github.com/arloliu/diffcore/token"
)

// side bundles one document's ingestion buffer and tokenizer state.
type side struct {
	buf       *pool.ByteBuffer
	tok       *token.Tokenizer
	committed int
}

func (s *side) bytes() []byte {
	return s.buf.B[:s.committed]
}

// Engine computes structural diffs between two JSON documents.
//
// The lifecycle is Fresh → Ingesting → Sealed → Fresh (Clear) or Gone
// (Destroy). Commits after Finalize return StatusEngineSealed; any
// operation after Destroy returns StatusInvalidHandle.
//
// An Engine is single-threaded: no operation suspends, and a handle must
// not be shared across goroutines concurrently. Callers needing
// parallelism instantiate one engine per worker. A cleared engine reuses
// all its storage, so a warmed engine performs no heap allocations per
// diff job in steady state.
type Engine struct {
	cfg    Config
	logger zerolog.Logger

	arena  *path.PathArena
	left   side
	right  side
	differ diff.Differ

	result         *pool.ByteBuffer
	symbols        *pool.ByteBuffer
	pathScratch    []byte
	lastErr        []byte
	entriesWritten int

	exportCompression format.CompressionType

	sealed     bool
	gone       bool
	generation uint32
}

// NewEngine creates an engine from the default configuration and the
// given options. It returns nil and an error when the resulting
// configuration is invalid.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:               DefaultConfig(),
		logger:            zerolog.Nop(),
		exportCompression: format.CompressionNone,
	}

	if err := applyOptions(e, opts...); err != nil {
		return nil, err
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	e.arena = path.NewPathArena()
	e.left = side{
		buf: pool.NewByteBuffer(pool.IngestBufferDefaultSize),
		tok: token.NewTokenizer(e.cfg.MaxObjectKeys, e.cfg.ComputeMode),
	}
	e.right = side{
		buf: pool.NewByteBuffer(pool.IngestBufferDefaultSize),
		tok: token.NewTokenizer(e.cfg.MaxObjectKeys, e.cfg.ComputeMode),
	}
	e.result = pool.NewByteBuffer(pool.ResultBufferDefaultSize)
	e.symbols = pool.NewByteBuffer(pool.ResultBufferDefaultSize)

	return e, nil
}

// Config returns the engine's configuration snapshot.
func (e *Engine) Config() Config {
	return e.cfg
}

// Generation returns the number of Clear calls since creation. All
// PathID values are meaningful only within a single generation.
func (e *Engine) Generation() uint32 {
	return e.generation
}

// LeftInput returns a writable window of n bytes in the left ingestion
// slot. The caller fills it and then calls CommitLeft. A second call
// before the commit discards the previous window. Returns nil when the
// engine cannot accept input.
func (e *Engine) LeftInput(n int) []byte {
	return e.input(&e.left, n)
}

// RightInput is LeftInput for the right ingestion slot.
func (e *Engine) RightInput(n int) []byte {
	return e.input(&e.right, n)
}

func (e *Engine) input(s *side, n int) []byte {
	if e.gone || e.sealed || n < 0 {
		return nil
	}

	s.buf.B = s.buf.B[:s.committed]

	return s.buf.ExtendOrGrow(n)
}

// CommitLeft feeds the first n bytes of the pending left window into the
// left tokenizer. Re-committing appends logically: offsets continue from
// the bytes already committed on that side.
func (e *Engine) CommitLeft(n int) format.Status {
	return e.commit(&e.left, &e.right, "left", n)
}

// CommitRight is CommitLeft for the right side.
func (e *Engine) CommitRight(n int) format.Status {
	return e.commit(&e.right, &e.left, "right", n)
}

// WriteLeft copies chunk into the left ingestion slot and commits it.
func (e *Engine) WriteLeft(chunk []byte) format.Status {
	return e.write(&e.left, &e.right, "left", chunk)
}

// WriteRight copies chunk into the right ingestion slot and commits it.
func (e *Engine) WriteRight(chunk []byte) format.Status {
	return e.write(&e.right, &e.left, "right", chunk)
}

func (e *Engine) write(s, other *side, name string, chunk []byte) format.Status {
	region := e.input(s, len(chunk))
	if region == nil {
		if e.gone {
			return format.StatusInvalidHandle
		}
		return format.StatusEngineSealed
	}
	copy(region, chunk)

	return e.commit(s, other, name, len(chunk))
}

func (e *Engine) commit(s, other *side, name string, n int) format.Status {
	if e.gone {
		return format.StatusInvalidHandle
	}
	if e.sealed {
		return format.StatusEngineSealed
	}
	if n < 0 || s.buf.Len() < s.committed+n {
		e.setError(fmt.Errorf("commit of %d bytes without a matching input window", n))
		return format.StatusError
	}

	if uint64(s.committed)+uint64(other.committed)+uint64(n) > uint64(e.cfg.MaxInputSize) {
		s.buf.B = s.buf.B[:s.committed]
		return format.StatusInputLimitExceeded
	}

	chunk := s.buf.B[s.committed : s.committed+n]
	if err := s.tok.Parse(chunk, e.arena); err != nil {
		if errors.Is(err, errs.ErrObjectKeyLimitExceeded) {
			return format.StatusObjectKeyLimitExceeded
		}
		// Parser failure: record the diagnostic and seal until Clear.
		e.setError(err)
		e.sealed = true

		return format.StatusError
	}

	s.committed += n
	s.buf.B = s.buf.B[:s.committed]

	e.logger.Debug().Str("side", name).Int("bytes", n).Int("committed", s.committed).Msg("chunk committed")

	return format.StatusOk
}

// Finalize runs the differ, serializes the result buffer, and seals the
// engine. The returned buffer is valid until the next Clear or Destroy.
func (e *Engine) Finalize() ([]byte, format.Status) {
	if e.gone {
		return nil, format.StatusInvalidHandle
	}
	if e.sealed {
		return nil, format.StatusEngineSealed
	}

	entries := e.differ.Compute(e.left.tok, e.right.tok, e.left.bytes(), e.right.bytes())

	e.result.Reset()
	e.result.B = section.NewResultHeader().AppendTo(e.result.B)

	written := 0
	for _, en := range entries {
		if e.result.Len()+section.EntrySize > int(e.cfg.MaxMemoryBytes) {
			e.setError(fmt.Errorf("%w: result buffer at %d bytes with %d of %d entries written",
				errs.ErrMemoryLimitExceeded, e.result.Len(), written, len(entries)))
			break
		}
		rec := section.EntryRecord{
			Op:          en.Op,
			PathID:      uint64(en.PathID),
			LeftOffset:  en.LeftOffset,
			LeftLen:     en.LeftLen,
			RightOffset: en.RightOffset,
			RightLen:    en.RightLen,
		}
		e.result.B = rec.AppendTo(e.result.B)
		written++
	}

	section.PatchCounts(e.result.B, uint32(written), uint64(e.result.Len()))
	e.entriesWritten = written
	e.sealed = true

	e.logger.Debug().Int("entries", written).Int("result_bytes", e.result.Len()).Msg("finalized")

	return e.result.Bytes(), format.StatusOk
}

// Result returns the serialized result buffer, or nil before Finalize.
func (e *Engine) Result() []byte {
	if e.gone || !e.sealed {
		return nil
	}

	return e.result.Bytes()
}

// ResultLen returns the length of the result buffer.
func (e *Engine) ResultLen() int {
	if e.gone {
		return 0
	}

	return e.result.Len()
}

// Entries returns the computed entries of the last Finalize, truncated to
// what was serialized. Valid until the next Clear.
func (e *Engine) Entries() []diff.Entry {
	if e.gone {
		return nil
	}

	return e.differ.Entries()[:e.entriesWritten]
}

// LeftBytes returns the committed bytes of the left side. Entry offsets
// for that side reference this slice.
func (e *Engine) LeftBytes() []byte {
	if e.gone {
		return nil
	}

	return e.left.bytes()
}

// RightBytes returns the committed bytes of the right side.
func (e *Engine) RightBytes() []byte {
	if e.gone {
		return nil
	}

	return e.right.bytes()
}

// ResolvePath reconstructs the human-readable path text for id, e.g.
// "$.xs[1].name". Reports false for ids not interned in this generation.
func (e *Engine) ResolvePath(id path.PathID) (string, bool) {
	if e.gone || !e.arena.Valid(id) {
		return "", false
	}

	return e.arena.String(id), true
}

// SymbolPayload serializes the path text of every result entry as a
// length-prefixed payload: u32 count, then u32 length + UTF-8 text per
// entry in result order. Valid until the next Clear or Destroy.
func (e *Engine) SymbolPayload() []byte {
	if e.gone {
		return nil
	}

	entries := e.Entries()
	e.symbols.Reset()
	e.symbols.B = section.AppendSymbolCount(e.symbols.B, uint32(len(entries)))
	for _, en := range entries {
		e.pathScratch = e.arena.AppendString(e.pathScratch[:0], en.PathID)
		e.symbols.B = section.AppendSymbol(e.symbols.B, e.pathScratch)
	}

	return e.symbols.Bytes()
}

// Export returns the result buffer passed through the configured export
// codec. With CompressionNone it returns the raw buffer.
func (e *Engine) Export() ([]byte, error) {
	return e.ExportResult(e.exportCompression)
}

// ExportResult compresses the sealed result buffer with the given codec
// for hosts shipping diff records over a wire. The in-memory result
// layout is unaffected.
func (e *Engine) ExportResult(ct format.CompressionType) ([]byte, error) {
	if e.gone {
		return nil, errs.ErrInvalidHandle
	}
	if !e.sealed {
		return nil, fmt.Errorf("%w: finalize before exporting", errs.ErrInvalidResultBuffer)
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	return codec.Compress(e.result.Bytes())
}

// Clear resets all state for the next diff job while keeping every
// allocated capacity, and starts a new generation.
func (e *Engine) Clear() format.Status {
	if e.gone {
		return format.StatusInvalidHandle
	}

	e.left.buf.Reset()
	e.right.buf.Reset()
	e.left.committed = 0
	e.right.committed = 0
	e.left.tok.Clear()
	e.right.tok.Clear()
	e.arena.Clear()
	e.differ.Clear()
	e.result.Reset()
	e.symbols.Reset()
	e.lastErr = e.lastErr[:0]
	e.entriesWritten = 0
	e.sealed = false
	e.generation++

	e.logger.Debug().Uint32("generation", e.generation).Msg("cleared")

	return format.StatusOk
}

// Destroy releases all storage. Idempotent in the sense of the status
// contract: the first call returns StatusOk, every later call returns
// StatusInvalidHandle, as does any other operation on the destroyed
// engine.
func (e *Engine) Destroy() format.Status {
	if e.gone {
		return format.StatusInvalidHandle
	}

	e.gone = true
	e.arena = nil
	e.left = side{}
	e.right = side{}
	e.result = nil
	e.symbols = nil
	e.lastErr = nil
	e.pathScratch = nil

	return format.StatusOk
}

// LastError returns the diagnostic of the last parser or serialization
// failure, or "" if none.
func (e *Engine) LastError() string {
	return string(e.lastErr)
}

// LastErrorLen returns the length of the diagnostic in bytes.
func (e *Engine) LastErrorLen() int {
	return len(e.lastErr)
}

func (e *Engine) setError(err error) {
	e.lastErr = append(e.lastErr[:0], err.Error()...)
	e.logger.Debug().Err(err).Msg("engine error")
}
