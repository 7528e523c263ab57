package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildInjective(t *testing.T) {
	pa := NewPathArena()
	in := pa.Interner()

	a := pa.Child(RootPathID, in.InternKey([]byte("a")))
	b := pa.Child(RootPathID, in.InternKey([]byte("b")))
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, RootPathID, a)

	// Revisiting the same location yields the same id.
	assert.Equal(t, a, pa.Child(RootPathID, in.InternKey([]byte("a"))))

	nested := pa.Child(a, in.InternKey([]byte("b")))
	assert.NotEqual(t, b, nested, "same segment under different parents is a different path")
}

func TestChildRootIdentity(t *testing.T) {
	pa := NewPathArena()
	child := pa.Child(RootPathID, EmptySegmentID)
	assert.NotEqual(t, RootPathID, child)
	assert.Equal(t, child, pa.Child(RootPathID, EmptySegmentID))
}

func TestL1CacheRepeatLookup(t *testing.T) {
	pa := NewPathArena()
	in := pa.Interner()
	seg := in.InternKey([]byte("sibling"))

	first := pa.Child(RootPathID, seg)
	// Sequential sibling traversal hits the one-entry cache.
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, pa.Child(RootPathID, seg))
	}
	assert.Equal(t, 2, pa.Len())
}

func TestPathString(t *testing.T) {
	pa := NewPathArena()
	in := pa.Interner()

	xs := pa.Child(RootPathID, in.InternKey([]byte("xs")))
	xs1 := pa.Child(xs, in.InternIndex(1))
	name := pa.Child(xs1, in.InternKey([]byte("name")))
	idx0 := pa.Child(RootPathID, in.InternIndex(0))

	tests := []struct {
		name string
		id   PathID
		want string
	}{
		{"root", RootPathID, "$"},
		{"key", xs, "$.xs"},
		{"key then index", xs1, "$.xs[1]"},
		{"key index key", name, "$.xs[1].name"},
		{"leading index", idx0, "$[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pa.String(tt.id))
		})
	}
}

func TestAppendString(t *testing.T) {
	pa := NewPathArena()
	in := pa.Interner()
	id := pa.Child(RootPathID, in.InternKey([]byte("k")))

	buf := pa.AppendString([]byte("prefix:"), id)
	assert.Equal(t, "prefix:$.k", string(buf))

	// Invalid ids degrade to the root marker.
	assert.Equal(t, "$", string(pa.AppendString(nil, PathID(4096))))
}

func TestDeepPathString(t *testing.T) {
	pa := NewPathArena()
	in := pa.Interner()

	// Deeper than the fixed reconstruction stack to exercise the spill.
	id := RootPathID
	want := "$"
	for i := 0; i < 40; i++ {
		id = pa.Child(id, in.InternKey([]byte{'a' + byte(i%26)}))
		want += "." + string([]byte{'a' + byte(i%26)})
	}
	assert.Equal(t, want, pa.String(id))
}

func TestArenaClear(t *testing.T) {
	pa := NewPathArena()
	in := pa.Interner()

	seg := in.InternKey([]byte("a"))
	first := pa.Child(RootPathID, seg)
	pa.Child(first, in.InternKey([]byte("b")))
	require.Equal(t, 3, pa.Len())

	pa.Clear()
	require.Equal(t, 1, pa.Len())
	assert.True(t, pa.Valid(RootPathID))
	assert.False(t, pa.Valid(first))

	// A fresh generation reproduces the same dense numbering.
	again := pa.Child(RootPathID, pa.Interner().InternKey([]byte("a")))
	assert.Equal(t, first, again)
}

func TestDeterministicTraversal(t *testing.T) {
	build := func() (*PathArena, []PathID) {
		pa := NewPathArena()
		in := pa.Interner()
		var ids []PathID
		obj := pa.Child(RootPathID, in.InternKey([]byte("obj")))
		ids = append(ids, obj)
		for i := 0; i < 5; i++ {
			ids = append(ids, pa.Child(obj, in.InternIndex(i)))
		}
		return pa, ids
	}

	pa1, ids1 := build()
	pa2, ids2 := build()
	require.Equal(t, ids1, ids2)
	for i := range ids1 {
		assert.Equal(t, pa1.String(ids1[i]), pa2.String(ids2[i]))
	}
}

func BenchmarkChildCacheHit(b *testing.B) {
	pa := NewPathArena()
	seg := pa.Interner().InternKey([]byte("k"))
	pa.Child(RootPathID, seg)
	b.ResetTimer()
	for b.Loop() {
		pa.Child(RootPathID, seg)
	}
}

func BenchmarkPathString(b *testing.B) {
	pa := NewPathArena()
	in := pa.Interner()
	id := pa.Child(RootPathID, in.InternKey([]byte("xs")))
	id = pa.Child(id, in.InternIndex(3))
	id = pa.Child(id, in.InternKey([]byte("name")))
	var buf []byte
	b.ResetTimer()
	for b.Loop() {
		buf = pa.AppendString(buf[:0], id)
	}
}
