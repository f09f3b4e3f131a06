package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tourbound/tsp"
)

// DefaultConfigPath is probed when --config is not given; a missing file at
// this path is not an error, it simply means "all defaults".
const DefaultConfigPath = "tourbound.toml"

// Config carries the optional file-level defaults for solve/compare.
// Flags always win over the file; the file wins over built-ins.
//
//	start = 2
//	algo = "greedy"
//	time-limit = "500ms"
type Config struct {
	Start     int    `toml:"start"`
	Algo      string `toml:"algo"`
	TimeLimit string `toml:"time-limit"`
}

// LoadConfig decodes a TOML config file. When the file does not exist and
// path is the default location, built-in defaults are returned; an explicit
// --config pointing at a missing file is an error.
func LoadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	cfg.Algo = "exact"

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if cfg.Algo == "" {
		cfg.Algo = "exact"
	}

	return cfg, nil
}

// Budget parses the optional time-limit field; empty means unlimited.
func (c Config) Budget() (time.Duration, error) {
	if c.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("config: time-limit: %w", err)
	}

	return d, nil
}

// errUnknownAlgo reports an algorithm selector outside {greedy, exact, both}.
var errUnknownAlgo = errors.New("config: unknown algorithm (want greedy, exact, or both)")

// parseAlgo maps the user-facing selector onto the solver routing: the
// returned bool is true when both solvers should run side by side.
func parseAlgo(s string) (tsp.Algorithm, bool, error) {
	switch s {
	case "greedy":
		return tsp.Greedy, false, nil
	case "exact", "bnb", "branch-and-bound":
		return tsp.BranchAndBound, false, nil
	case "both", "compare":
		return 0, true, nil
	default:
		return 0, false, errUnknownAlgo
	}
}
