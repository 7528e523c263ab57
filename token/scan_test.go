package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipSpaceFastMatchesScalar(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"   x",
		"\t\n\r x",
		strings.Repeat(" ", 7) + "{",
		strings.Repeat(" ", 8) + "{",
		strings.Repeat(" ", 23) + "\"",
		strings.Repeat(" ", 64),
		"no leading space at all",
		"\x00\x01\x1f!",
		"   \x80after high bit", // high-bit byte is not whitespace
	}
	for _, in := range inputs {
		data := []byte(in)
		for pos := 0; pos <= len(data); pos++ {
			assert.Equal(t, skipSpace(data, pos), skipSpaceFast(data, pos), "input %q pos %d", in, pos)
		}
	}
}

func TestNextStringSpecialFastMatchesScalar(t *testing.T) {
	inputs := []string{
		"",
		`"`,
		`\`,
		`plain text without terminator`,
		`abcdefg"`,
		`abcdefgh"`,
		`abc\defg"tail`,
		strings.Repeat("a", 100) + `"`,
		strings.Repeat("a", 100) + `\"`,
		"\x00\x00\"",
		"é\"", // multi-byte UTF-8 before the quote
	}
	for _, in := range inputs {
		data := []byte(in)
		for pos := 0; pos <= len(data); pos++ {
			assert.Equal(t, nextStringSpecial(data, pos), nextStringSpecialFast(data, pos), "input %q pos %d", in, pos)
		}
	}
}

func BenchmarkSkipSpaceFast(b *testing.B) {
	data := []byte(strings.Repeat(" ", 256) + "x")
	b.ResetTimer()
	for b.Loop() {
		skipSpaceFast(data, 0)
	}
}

func BenchmarkNextStringSpecialFast(b *testing.B) {
	data := []byte(strings.Repeat("a", 256) + `"`)
	b.ResetTimer()
	for b.Loop() {
		nextStringSpecialFast(data, 0)
	}
}
