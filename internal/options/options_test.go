package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	limit int
	name  string
}

func TestApply(t *testing.T) {
	tgt := &target{}
	err := Apply(tgt,
		NoError(func(c *target) { c.name = "engine" }),
		New(func(c *target) error {
			c.limit = 42
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "engine", tgt.name)
	assert.Equal(t, 42, tgt.limit)
}

func TestApplyStopsOnError(t *testing.T) {
	errBad := errors.New("bad option")
	tgt := &target{}
	err := Apply(tgt,
		New(func(c *target) error { return errBad }),
		NoError(func(c *target) { c.limit = 7 }),
	)
	require.ErrorIs(t, err, errBad)
	assert.Zero(t, tgt.limit, "options after a failure are not applied")
}

func TestApplyEmpty(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}
