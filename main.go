// Command tunnelsat looks for paths in tunnel networks with a SAT solver.
//
// Usage:
//
//	tunnelsat solve [-l length | --max-length n] [--trace] network.(yaml|tn)
//	tunnelsat dimacs -l length network.(yaml|tn)
//	tunnelsat graph [-l length] network.(yaml|tn)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crillab/tunnelsat/internal/logging"
	"github.com/crillab/tunnelsat/sat"
)

var rootCmd = &cobra.Command{
	Use:   "tunnelsat",
	Short: "tunnelsat looks for paths in tunnel networks",
	Long: `tunnelsat reduces the search of a simple path in a tunnel network, whose
edges transmit, push or pop protocol symbols on a stack, to a SAT problem.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("solver", sat.Default, fmt.Sprintf("SAT backend, one of %v", sat.Names()))
	rootCmd.PersistentFlags().Duration("timeout", 0, "maximum solving time per length, 0 for none (gini only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

// config gathers the persistent flags.
type config struct {
	logger  *slog.Logger
	solver  sat.Solver
	colored bool
}

func loadConfig(cmd *cobra.Command) (*config, error) {
	flags := cmd.Flags()
	levelStr, _ := flags.GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)
	name, _ := flags.GetString("solver")
	timeout, _ := flags.GetDuration("timeout")
	s, err := sat.New(name, sat.Options{Timeout: timeout, Logger: logger})
	if err != nil {
		return nil, err
	}
	noColor, _ := flags.GetBool("no-color")
	colored := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	return &config{logger: logger, solver: s, colored: colored}, nil
}

func main() {
	Execute()
}
