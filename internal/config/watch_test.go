package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_InitialLoad(t *testing.T) {
	path := writeConfig(t, `
cutoff:
  cancellation:
    today: -7
    tomorrow: 11
`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got *Config
	err := Watch(ctx, path, time.Minute, func(cfg *Config) { got = cfg })
	require.NoError(t, err)

	require.NotNil(t, got, "watch delivers the initial load synchronously")
	assert.Equal(t, 11, got.Cutoff.Cancellation.Tomorrow)
}

func TestWatch_MissingFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Watch(ctx, filepath.Join(t.TempDir(), "missing.yaml"), time.Minute, nil)
	require.Error(t, err)
}
