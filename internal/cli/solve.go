package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbound/dataset"
	"github.com/katalvlaran/tourbound/tsp"
)

// loadInstance resolves the instance argument: a YAML file when given,
// otherwise the embedded reference dataset.
func loadInstance(args []string) (*dataset.Instance, error) {
	if len(args) == 0 {
		return dataset.Hyderabad(), nil
	}

	return dataset.LoadYAML(args[0])
}

// solveFlags are the per-command knobs; unset flags fall back to the TOML
// config, which falls back to built-ins.
type solveFlags struct {
	start     int
	algo      string
	timeLimit time.Duration
}

// resolveOptions merges flags over config into solver Options.
func resolveOptions(cmd *cobra.Command, flags solveFlags, cfg Config) (tsp.Options, string, error) {
	opts := tsp.DefaultOptions()

	opts.StartVertex = cfg.Start
	if cmd.Flags().Changed("start") {
		opts.StartVertex = flags.start
	}

	budget, err := cfg.Budget()
	if err != nil {
		return tsp.Options{}, "", err
	}
	opts.TimeLimit = budget
	if cmd.Flags().Changed("time-limit") {
		opts.TimeLimit = flags.timeLimit
	}

	algo := cfg.Algo
	if cmd.Flags().Changed("algo") {
		algo = flags.algo
	}

	return opts, algo, nil
}

// newSolveCmd builds the `solve` command: one instance, one solver.
func newSolveCmd(configPath *string) *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve [instance.yaml]",
		Short: "Solve one instance with a single algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := LoadConfig(configPathOrDefault(configPath), *configPath != "")
			if err != nil {
				return err
			}
			opts, algoName, err := resolveOptions(cmd, flags, cfg)
			if err != nil {
				return err
			}

			in, err := loadInstance(args)
			if err != nil {
				return err
			}
			m, err := in.Matrix()
			if err != nil {
				return err
			}
			logger.Debug("instance loaded", "name", in.Name, "locations", m.Size())

			algo, both, err := parseAlgo(algoName)
			if err != nil {
				return err
			}
			if both {
				return runCompare(cmd, in, opts)
			}
			opts.Algo = algo

			prog := newProgress(logger)
			res, err := tsp.Solve(m, opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("solved %s with %s", in.Name, opts.Algo))

			out, err := renderResult(in, heading(opts.Algo), res)
			if err != nil {
				return err
			}
			cmd.Println(out)

			return nil
		},
	}

	addSolveFlags(cmd, &flags)

	return cmd
}

// newCompareCmd builds the `compare` command: both solvers, side by side.
func newCompareCmd(configPath *string) *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "compare [instance.yaml]",
		Short: "Run greedy and exact solvers side by side",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPathOrDefault(configPath), *configPath != "")
			if err != nil {
				return err
			}
			opts, _, err := resolveOptions(cmd, flags, cfg)
			if err != nil {
				return err
			}

			in, err := loadInstance(args)
			if err != nil {
				return err
			}

			return runCompare(cmd, in, opts)
		},
	}

	addSolveFlags(cmd, &flags)

	return cmd
}

// runCompare executes both solvers and prints the side-by-side report.
func runCompare(cmd *cobra.Command, in *dataset.Instance, opts tsp.Options) error {
	logger := loggerFromContext(cmd.Context())

	m, err := in.Matrix()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	cmp, err := tsp.Compare(m, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("compared solvers on %s", in.Name))

	out, err := renderComparison(in, cmp)
	if err != nil {
		return err
	}
	cmd.Println(out)

	return nil
}

// addSolveFlags registers the shared solver flags on cmd.
func addSolveFlags(cmd *cobra.Command, flags *solveFlags) {
	cmd.Flags().IntVar(&flags.start, "start", 0, "start location index")
	cmd.Flags().StringVar(&flags.algo, "algo", "exact", "algorithm: greedy, exact, or both")
	cmd.Flags().DurationVar(&flags.timeLimit, "time-limit", 0, "soft budget for the exact search (0 = unlimited)")
}

// configPathOrDefault resolves the --config flag to a concrete path.
func configPathOrDefault(configPath *string) string {
	if *configPath != "" {
		return *configPath
	}

	return DefaultConfigPath
}

// heading maps an algorithm onto its report heading.
func heading(a tsp.Algorithm) string {
	if a == tsp.Greedy {
		return "Nearest-neighbor greedy"
	}

	return "Branch-and-Bound (exact)"
}
