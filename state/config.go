package state

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
)

// SimCfg carries operational knobs for a simulation run. Everything here is
// optional; the zero value is a faithful, unbounded, sequential run.
type SimCfg struct {
	// MaxRounds aborts a run that has not converged after this many rounds.
	// Zero means unbounded, which is the contractually faithful default.
	MaxRounds int `yaml:"maxRounds"`
	// Parallel fans per-round relaxation out to one goroutine per node.
	Parallel bool   `yaml:"parallel"`
	LogPath  string `yaml:"logPath"`
	LogLevel string `yaml:"logLevel"`
}

func LoadSimCfg(path string) (*SimCfg, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg SimCfg
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}
	err = SimConfigValidator(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SimConfigValidator(cfg *SimCfg) error {
	if cfg.MaxRounds < 0 {
		return fmt.Errorf("maxRounds must not be negative, got %d", cfg.MaxRounds)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

func (cfg *SimCfg) Level() (slog.Level, error) {
	switch cfg.LogLevel {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", cfg.LogLevel)
}
