// Package cli implements the tourbound command-line interface.
//
// The CLI loads a labeled TSP instance (YAML file, or the embedded
// reference dataset when no file is given), runs the requested solver(s),
// and prints a plain-text tour report. It is a thin presentation layer: all
// solving lives in the tsp package, all validation in distmat/dataset.
//
// # Commands
//
//   - solve:   run one solver (greedy or exact) on an instance
//   - compare: run both solvers independently and report them side by side
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log. The logger travels through context.Context; solver hot
// paths never log.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the tourbound CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "tourbound",
		Short:        "tourbound solves small symmetric TSP instances",
		Long:         `tourbound finds closed delivery tours over a pairwise distance matrix, either with the fast nearest-neighbor heuristic or with an exact Branch-and-Bound search, and reports the routes with their total distances.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate("tourbound " + version + "\ncommit: " + commit + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a tourbound.toml (default: ./"+DefaultConfigPath+" when present)")

	root.AddCommand(newSolveCmd(&configPath))
	root.AddCommand(newCompareCmd(&configPath))

	return root.ExecuteContext(context.Background())
}
