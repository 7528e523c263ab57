package token

import (
	"fmt"

	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
	"github.com/arloliu/diffcore/internal/hash"
	"github.com/arloliu/diffcore/path"
)

// Tokenizer scans one side's committed bytes and emits path-tagged tokens.
//
// The scanner is liberal: it skips anything <= 0x20 as whitespace and does
// not validate full JSON grammar. It never reads out of bounds, and for
// well-formed input it emits exactly one Value token per scalar leaf.
//
// Parse may be called repeatedly; each call continues the structural state
// of the previous one, and emitted offsets are shifted by the running
// total of bytes already scanned on this side. Chunk boundaries must fall
// outside scalar tokens.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	tokens       []Token
	values       ValueIndex
	pathStack    []path.PathID
	arrayIndices []int
	currentPath  path.PathID
	expectingKey bool
	keyCount     uint32
	maxKeys      uint32
	baseOffset   uint32
	fast         bool
}

// NewTokenizer creates a tokenizer.
//
// maxObjectKeys bounds the number of keys declared since the most recent
// '{' (the count restarts at every object open); a zero limit disables the
// guard. mode selects the scanning strategy; both
// modes emit identical tokens.
func NewTokenizer(maxObjectKeys uint32, mode format.ComputeMode) *Tokenizer {
	return &Tokenizer{
		tokens:       make([]Token, 0, 256),
		pathStack:    make([]path.PathID, 0, 32),
		arrayIndices: make([]int, 0, 16),
		currentPath:  path.RootPathID,
		maxKeys:      maxObjectKeys,
		fast:         mode == format.ComputeModeThroughput,
	}
}

// Parse scans chunk, interning paths through arena and appending tokens.
//
// Returns errs.ErrIncompleteInput when the chunk ends inside a string, and
// errs.ErrObjectKeyLimitExceeded when an object declares too many keys.
// On error the already-emitted tokens are kept; the caller decides whether
// to clear or abandon the side.
func (t *Tokenizer) Parse(chunk []byte, arena *path.PathArena) error {
	pos := 0
	n := len(chunk)

	for pos < n {
		if t.fast {
			pos = skipSpaceFast(chunk, pos)
		} else {
			pos = skipSpace(chunk, pos)
		}
		if pos >= n {
			break
		}

		switch chunk[pos] {
		case '{':
			t.pathStack = append(t.pathStack, t.currentPath)
			// -1 marks an object scope in arrayIndices; array scopes hold
			// their current element index (>= 0).
			t.arrayIndices = append(t.arrayIndices, -1)
			t.emit(t.currentPath, StartObject, 0, 0, 0)
			t.expectingKey = true
			t.keyCount = 0
			pos++
		case '}':
			if k := len(t.arrayIndices); k > 0 && t.arrayIndices[k-1] < 0 {
				t.arrayIndices = t.arrayIndices[:k-1]
			}
			t.popPath()
			t.emit(t.currentPath, EndObject, 0, 0, 0)
			t.expectingKey = false
			pos++
		case '[':
			t.pathStack = append(t.pathStack, t.currentPath)
			t.emit(t.currentPath, StartArray, 0, 0, 0)
			t.arrayIndices = append(t.arrayIndices, 0)
			t.currentPath = arena.Child(t.currentPath, arena.Interner().InternIndex(0))
			pos++
		case ']':
			if k := len(t.arrayIndices); k > 0 {
				t.arrayIndices = t.arrayIndices[:k-1]
			}
			t.popPath()
			t.emit(t.currentPath, EndArray, 0, 0, 0)
			pos++
		case '"':
			var err error
			pos, err = t.scanString(chunk, pos, arena)
			if err != nil {
				return err
			}
		case ':':
			t.expectingKey = false
			pos++
		case ',':
			if k := len(t.arrayIndices); k > 0 && t.arrayIndices[k-1] >= 0 {
				t.arrayIndices[k-1]++
				t.currentPath = arena.Child(t.parentOnStack(), arena.Interner().InternIndex(t.arrayIndices[k-1]))
			} else {
				t.expectingKey = true
			}
			pos++
		default:
			pos = t.scanPrimitive(chunk, pos)
		}
	}

	t.baseOffset += uint32(n)

	return nil
}

func (t *Tokenizer) popPath() {
	if k := len(t.pathStack); k > 0 {
		t.currentPath = t.pathStack[k-1]
		t.pathStack = t.pathStack[:k-1]
	}
}

func (t *Tokenizer) parentOnStack() path.PathID {
	if k := len(t.pathStack); k > 0 {
		return t.pathStack[k-1]
	}

	return path.RootPathID
}

// scanString consumes a quoted string starting at the opening quote. A
// backslash always escapes exactly one following character, which is all
// the span bookkeeping needs; escape sequences are not decoded.
func (t *Tokenizer) scanString(chunk []byte, pos int, arena *path.PathArena) (int, error) {
	pos++
	start := pos

	for {
		var i int
		if t.fast {
			i = nextStringSpecialFast(chunk, pos)
		} else {
			i = nextStringSpecial(chunk, pos)
		}
		if i < 0 {
			return 0, fmt.Errorf("%w: unterminated string at offset %d", errs.ErrIncompleteInput, t.baseOffset+uint32(start-1))
		}
		if chunk[i] == '"' {
			pos = i
			break
		}
		pos = i + 2
		if pos > len(chunk) {
			return 0, fmt.Errorf("%w: escape at end of input", errs.ErrIncompleteInput)
		}
	}

	span := chunk[start:pos]

	if t.expectingKey {
		t.keyCount++
		if t.maxKeys > 0 && t.keyCount > t.maxKeys {
			return 0, fmt.Errorf("%w: object declares more than %d keys", errs.ErrObjectKeyLimitExceeded, t.maxKeys)
		}
		seg := arena.Interner().InternKey(span)
		t.currentPath = arena.Child(t.parentOnStack(), seg)
	} else {
		t.emit(t.currentPath, Value, hash.Fingerprint(span), t.baseOffset+uint32(start), uint32(len(span)))
	}

	return pos + 1, nil
}

// scanPrimitive consumes a number, boolean, or null. The span ends at the
// next structural byte or whitespace. After a primitive inside an object,
// the current path returns to the object so the next key resolves against
// it.
func (t *Tokenizer) scanPrimitive(chunk []byte, pos int) int {
	start := pos
	for pos < len(chunk) {
		b := chunk[pos]
		if b == ',' || b == '}' || b == ']' || b <= 0x20 {
			break
		}
		pos++
	}

	span := chunk[start:pos]
	t.emit(t.currentPath, Value, hash.Fingerprint(span), t.baseOffset+uint32(start), uint32(len(span)))

	if k := len(t.arrayIndices); k > 0 && t.arrayIndices[k-1] < 0 && len(t.pathStack) > 0 {
		t.currentPath = t.pathStack[len(t.pathStack)-1]
	}

	return pos
}

func (t *Tokenizer) emit(id path.PathID, event Event, valueHash uint64, offset, length uint32) {
	t.tokens = append(t.tokens, Token{
		PathID:    id,
		Event:     event,
		ValueHash: valueHash,
		RawOffset: offset,
		RawLen:    length,
	})
	if event == Value {
		t.values.Set(id, len(t.tokens)-1)
	}
}

// Tokens returns the emitted token stream. Valid until the next Clear.
func (t *Tokenizer) Tokens() []Token {
	return t.tokens
}

// Values returns this side's value index.
func (t *Tokenizer) Values() *ValueIndex {
	return &t.values
}

// TotalBytes returns the number of bytes scanned on this side so far.
func (t *Tokenizer) TotalBytes() uint32 {
	return t.baseOffset
}

// Clear drains the tokens and resets all structural state. Backing
// storage is retained for the next generation.
func (t *Tokenizer) Clear() {
	t.tokens = t.tokens[:0]
	t.values.Reset()
	t.pathStack = t.pathStack[:0]
	t.arrayIndices = t.arrayIndices[:0]
	t.currentPath = path.RootPathID
	t.expectingKey = false
	t.keyCount = 0
	t.baseOffset = 0
}
