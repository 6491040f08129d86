package state

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSimCfg(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sim.yaml")
	err := os.WriteFile(p, []byte("maxRounds: 200\nparallel: true\nlogLevel: debug\n"), 0600)
	assert.NoError(t, err)

	cfg, err := LoadSimCfg(p)
	assert.NoError(t, err)
	assert.Equal(t, 200, cfg.MaxRounds)
	assert.True(t, cfg.Parallel)
	level, err := cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestSimConfigValidator(t *testing.T) {
	assert.NoError(t, SimConfigValidator(&SimCfg{}))
	assert.ErrorContains(t, SimConfigValidator(&SimCfg{MaxRounds: -1}), "must not be negative")
	assert.ErrorContains(t, SimConfigValidator(&SimCfg{LogLevel: "loud"}), "unknown log level")
}
