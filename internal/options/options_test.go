package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	limit int64
	name  string
}

func TestApply(t *testing.T) {
	cfg := &config{}
	err := Apply(cfg,
		NoError(func(c *config) { c.limit = 1000 }),
		New(func(c *config) error {
			c.name = "ladder"
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), cfg.limit)
	assert.Equal(t, "ladder", cfg.name)
}

func TestApplyStopsOnError(t *testing.T) {
	sentinel := errors.New("bad option")
	cfg := &config{}

	err := Apply(cfg,
		New(func(c *config) error { return sentinel }),
		NoError(func(c *config) { c.limit = 42 }),
	)
	require.ErrorIs(t, err, sentinel)
	assert.Zero(t, cfg.limit, "options after a failure must not run")
}
