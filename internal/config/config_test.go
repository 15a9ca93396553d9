package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Default("test"), nil)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 1, cfg.GLMinor)
	assert.InDelta(t, 4.0/3.0, cfg.Aspect(), 1e-6)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(Default("test"), []string{"-width", "800", "-height", "600", "-stats"})
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.True(t, cfg.Stats)
}

func TestLoadFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	err := os.WriteFile(path, []byte("width = 1024\nheight = 768\nseed = 7\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(Default("test"), []string{"-config", path, "-height", "900"})
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Width, "file overrides default")
	assert.Equal(t, 900, cfg.Height, "flag overrides file")
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadExtraFlags(t *testing.T) {
	particles := 128
	register := func(fs *flag.FlagSet) {
		fs.IntVar(&particles, "particles", particles, "particle count")
	}

	_, err := Load(Default("test"), []string{"-particles", "4096"}, register)
	require.NoError(t, err)
	assert.Equal(t, 4096, particles)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(Default("test"), []string{"-width", "0"})
	assert.Error(t, err)

	old := Default("test")
	old.GLMajor, old.GLMinor = 3, 2
	_, err = Load(old, nil)
	assert.Error(t, err)

	_, err = Load(Default("test"), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestStartProfileDisabled(t *testing.T) {
	stop, err := Default("test").StartProfile()
	require.NoError(t, err)
	stop()
}

func TestLoadHelp(t *testing.T) {
	_, err := Load(Default("test"), []string{"-h"})
	require.Error(t, err)
	assert.True(t, IsHelp(err))

	_, err = Load(Default("test"), []string{"-width", "0"})
	require.Error(t, err)
	assert.False(t, IsHelp(err))
}
