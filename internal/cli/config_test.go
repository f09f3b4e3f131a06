package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tourbound/tsp"
)

func TestLoadConfig_MissingDefaultIsFine(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), false)
	if err != nil {
		t.Fatalf("missing default config must not error, got %v", err)
	}
	if cfg.Algo != "exact" || cfg.Start != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_MissingExplicitErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), true)
	if err == nil {
		t.Fatal("explicit missing config must error")
	}
}

func TestLoadConfig_Decode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourbound.toml")
	body := "start = 2\nalgo = \"greedy\"\ntime-limit = \"500ms\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Start != 2 || cfg.Algo != "greedy" {
		t.Fatalf("decoded config mismatch: %+v", cfg)
	}

	budget, err := cfg.Budget()
	if err != nil {
		t.Fatalf("Budget failed: %v", err)
	}
	if budget != 500*time.Millisecond {
		t.Fatalf("budget = %v, want 500ms", budget)
	}
}

func TestConfig_BadBudget(t *testing.T) {
	cfg := Config{TimeLimit: "soon"}
	if _, err := cfg.Budget(); err == nil {
		t.Fatal("want parse error for bad time-limit")
	}
}

func TestParseAlgo(t *testing.T) {
	cases := []struct {
		in   string
		algo tsp.Algorithm
		both bool
	}{
		{"greedy", tsp.Greedy, false},
		{"exact", tsp.BranchAndBound, false},
		{"bnb", tsp.BranchAndBound, false},
		{"branch-and-bound", tsp.BranchAndBound, false},
		{"both", 0, true},
		{"compare", 0, true},
	}
	for _, tc := range cases {
		algo, both, err := parseAlgo(tc.in)
		if err != nil {
			t.Fatalf("parseAlgo(%q): %v", tc.in, err)
		}
		if both != tc.both || (!both && algo != tc.algo) {
			t.Fatalf("parseAlgo(%q) = %v/%v", tc.in, algo, both)
		}
	}

	if _, _, err := parseAlgo("annealing"); !errors.Is(err, errUnknownAlgo) {
		t.Fatalf("want errUnknownAlgo, got %v", err)
	}
}
