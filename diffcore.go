// Package diffcore compares two JSON documents and emits a structural
// difference as a compact binary record.
//
// Both documents are consumed as byte chunks and parsed in a single
// forward pass without building an object tree. Every JSON location is
// interned to a dense PathID, scalar values are fingerprinted and
// referenced as byte ranges into the input, and the diff joins the two
// token streams by path identity into an ordered list of Added, Removed,
// and Modified entries.
//
// # Basic Usage
//
// One-shot comparison through the convenience wrapper:
//
//	import "github.com/arloliu/diffcore"
//
//	result, err := diffcore.Diff(
//	    []byte(`{"a":1,"b":2}`),
//	    []byte(`{"a":1,"b":3}`),
//	)
//	for _, e := range result.Entries {
//	    fmt.Printf("%s %s: %q -> %q\n", e.Op, e.Path, e.Left, e.Right)
//	}
//
// Long-lived engines amortize all allocations across jobs:
//
//	eng, _ := engine.NewEngine()
//	for _, job := range jobs {
//	    eng.WriteLeft(job.Left)
//	    eng.WriteRight(job.Right)
//	    buf, _ := eng.Finalize() // binary record, see the section package
//	    consume(buf)
//	    eng.Clear()
//	}
//	eng.Destroy()
//
// An engine handle is not safe to share across goroutines; callers
// needing parallelism instantiate one engine per worker.
//
// # Package Structure
//
// This package provides convenient wrappers around the engine package.
// For the ingestion-commit-finalize lifecycle, status codes, and the
// binary result contract, use engine and section directly.
package diffcore

import (
	"fmt"

	"github.com/arloliu/diffcore/engine"
	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
)

// Entry is one resolved difference between the two documents. Left and
// Right hold copies of the raw value bytes; they are empty for the side
// an Added or Removed entry does not have.
type Entry struct {
	Op    format.DiffOp
	Path  string
	Left  []byte
	Right []byte
}

// Result is the resolved outcome of a one-shot Diff. Buffer holds the
// serialized binary record described in the section package.
type Result struct {
	Buffer  []byte
	Entries []Entry
}

// Diff compares two JSON documents with the default configuration.
func Diff(left, right []byte) (*Result, error) {
	return DiffWithOptions(left, right)
}

// DiffWithOptions compares two JSON documents through a freshly created
// engine configured by opts. The engine is destroyed before returning;
// all returned data is copied out.
func DiffWithOptions(left, right []byte, opts ...engine.Option) (*Result, error) {
	eng, err := engine.NewEngine(opts...)
	if err != nil {
		return nil, err
	}
	defer eng.Destroy()

	if status := eng.WriteLeft(left); !status.IsOK() {
		return nil, statusError("left commit", status, eng.LastError())
	}
	if status := eng.WriteRight(right); !status.IsOK() {
		return nil, statusError("right commit", status, eng.LastError())
	}

	buf, status := eng.Finalize()
	if !status.IsOK() {
		return nil, statusError("finalize", status, eng.LastError())
	}

	result := &Result{
		Buffer:  append([]byte(nil), buf...),
		Entries: make([]Entry, 0, len(eng.Entries())),
	}

	leftBytes := eng.LeftBytes()
	rightBytes := eng.RightBytes()
	for _, en := range eng.Entries() {
		pathText, _ := eng.ResolvePath(en.PathID)
		result.Entries = append(result.Entries, Entry{
			Op:    en.Op,
			Path:  pathText,
			Left:  append([]byte(nil), leftBytes[en.LeftOffset:en.LeftOffset+en.LeftLen]...),
			Right: append([]byte(nil), rightBytes[en.RightOffset:en.RightOffset+en.RightLen]...),
		})
	}

	return result, nil
}

func statusError(op string, status format.Status, diagnostic string) error {
	err := statusSentinel(status)
	if diagnostic != "" {
		return fmt.Errorf("%s: %w: %s", op, err, diagnostic)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func statusSentinel(status format.Status) error {
	switch status {
	case format.StatusInputLimitExceeded:
		return errs.ErrInputLimitExceeded
	case format.StatusEngineSealed:
		return errs.ErrEngineSealed
	case format.StatusInvalidHandle:
		return errs.ErrInvalidHandle
	case format.StatusObjectKeyLimitExceeded:
		return errs.ErrObjectKeyLimitExceeded
	case format.StatusArrayTooLarge:
		return errs.ErrArrayTooLarge
	default:
		return fmt.Errorf("engine status %s", status)
	}
}
