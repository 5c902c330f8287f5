package sapling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
title: demo
width: 320
clearColor: "#ff000080"
logLevel: debug
showFPS: true
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 480, cfg.Height, "unset fields keep defaults")
	assert.Equal(t, 60, cfg.TPS)
	assert.InDelta(t, 1.0, cfg.ClearColor.R, 1e-9)
	assert.InDelta(t, 128.0/255, cfg.ClearColor.A, 1e-9)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ShowFPS)
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":    "width: [",
		"size":      "width: 0",
		"tps":       "tps: -1",
		"color":     `clearColor: "#xyz"`,
		"log level": "logLevel: loud",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tps: 30\n"), 0o644))
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#336699")
	require.NoError(t, err)
	assert.InDelta(t, 0x33/255.0, c.R, 1e-9)
	assert.InDelta(t, 1.0, c.A, 1e-9)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
}
