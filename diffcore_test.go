package diffcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/diffcore/engine"
	"github.com/arloliu/diffcore/errs"
	"github.com/arloliu/diffcore/format"
	"github.com/arloliu/diffcore/section"
)

func TestDiff(t *testing.T) {
	result, err := Diff(
		[]byte(`{"a":1,"b":2,"xs":[1,2,3]}`),
		[]byte(`{"a":1,"b":3,"xs":[1,2],"c":true}`),
	)
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	byPath := make(map[string]Entry)
	for _, e := range result.Entries {
		byPath[e.Path] = e
	}

	assert.Equal(t, format.OpModified, byPath["$.b"].Op)
	assert.Equal(t, "2", string(byPath["$.b"].Left))
	assert.Equal(t, "3", string(byPath["$.b"].Right))

	assert.Equal(t, format.OpAdded, byPath["$.c"].Op)
	assert.Equal(t, "true", string(byPath["$.c"].Right))
	assert.Empty(t, byPath["$.c"].Left)

	assert.Equal(t, format.OpRemoved, byPath["$.xs[2]"].Op)
	assert.Equal(t, "3", string(byPath["$.xs[2]"].Left))
}

func TestDiffIdenticalDocuments(t *testing.T) {
	doc := []byte(`{"nested":{"deep":[1,"two",null]}}`)
	result, err := Diff(doc, doc)
	require.NoError(t, err)
	assert.Empty(t, result.Entries)

	header, _, err := section.ParseResult(result.Buffer)
	require.NoError(t, err)
	assert.Zero(t, header.EntryCount)
}

func TestDiffBufferIsParseable(t *testing.T) {
	result, err := Diff([]byte(`{"a":1}`), []byte(`{"a":2}`))
	require.NoError(t, err)

	header, records, err := section.ParseResult(result.Buffer)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), header.EntryCount)
	require.Len(t, records, 1)
	assert.Equal(t, format.OpModified, records[0].Op)
}

func TestDiffWithOptions(t *testing.T) {
	_, err := DiffWithOptions(
		[]byte(`{"a":1,"b":2,"c":3}`),
		[]byte(`{}`),
		engine.WithMaxObjectKeys(2),
	)
	require.ErrorIs(t, err, errs.ErrObjectKeyLimitExceeded)

	_, err = DiffWithOptions([]byte(`{"a":1}`), []byte(`{"a":1}`), engine.WithMaxInputSize(0))
	require.Error(t, err)
}

func TestDiffMalformedInput(t *testing.T) {
	_, err := Diff([]byte(`{"a":"unterminated`), []byte(`{}`))
	require.Error(t, err)
}

func TestDiffInputLimit(t *testing.T) {
	_, err := DiffWithOptions(
		[]byte(`{"key":"0123456789012345678901234567890123456789"}`),
		[]byte(`{}`),
		engine.WithMaxInputSize(16),
	)
	require.ErrorIs(t, err, errs.ErrInputLimitExceeded)
}
