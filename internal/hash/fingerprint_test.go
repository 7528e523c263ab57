package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint64
	}{
		{"empty", "", 0xcbf29ce484222325},
		{"single byte", "a", 0xaf63dc4c8601ec8c},
		{"word", "foobar", 0x85944171f73967e8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint([]byte(tt.data)))
		})
	}
}

func TestFingerprintInequality(t *testing.T) {
	// Equal fingerprints do not prove equality, but differing inputs of the
	// same length should essentially never collide in practice.
	assert.NotEqual(t, Fingerprint([]byte(`"hello"`)), Fingerprint([]byte(`"hellp"`)))
	assert.NotEqual(t, Fingerprint([]byte("123")), Fingerprint([]byte("124")))
	assert.Equal(t, Fingerprint([]byte("true")), Fingerprint([]byte("true")))
}

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"key", "user_name", ID([]byte("user_name"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID([]byte(tt.data)))
		})
	}
}

func BenchmarkFingerprint(b *testing.B) {
	data := []byte(`{"nested":{"value":12345.6789}}`)
	b.ResetTimer()
	for b.Loop() {
		Fingerprint(data)
	}
}

func BenchmarkID(b *testing.B) {
	data := []byte("configuration")
	b.ResetTimer()
	for b.Loop() {
		ID(data)
	}
}
