package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Board.Rows)
	assert.Equal(t, 6, cfg.Board.Cols)
	require.NoError(t, cfg.Validate())

	l := cfg.EngineLayout()
	assert.Equal(t, float32(50), l.Origin.X)
	assert.Equal(t, float32(300), l.Origin.Y)
	assert.Equal(t, float32(100), l.TileSize)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
board:
  rows: 8
layout:
  tile_size: 64
seed: 42
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Board.Rows)
	assert.Equal(t, 6, cfg.Board.Cols)
	assert.Equal(t, float32(64), cfg.Layout.TileSize)
	assert.Equal(t, float32(50), cfg.Layout.OffsetX)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero rows", "board: {rows: 0}"},
		{"negative tile", "layout: {tile_size: -1}"},
		{"bad level", "log_level: loud"},
		{"negative window", "window: {width: -5}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("board: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: {rows: 3, cols: 4}\n"), 0o644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Board.Rows)
	assert.Equal(t, 4, cfg.Board.Cols)
}
