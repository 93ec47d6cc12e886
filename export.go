package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/crillab/tunnelsat/pathfind"
	"github.com/crillab/tunnelsat/reduction"
	"github.com/crillab/tunnelsat/tunnel"
)

var dimacsCmd = &cobra.Command{
	Use:   "dimacs <network>",
	Short: "Write the CNF reduction of a network in the DIMACS format",
	Long: `Writes the CNF formula whose models are the paths of the given length, so
that it can be fed to any SAT solver. Comment lines associate variable names
with their index.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := tunnel.Load(args[0])
		if err != nil {
			return err
		}
		length, _ := cmd.Flags().GetInt("length")
		return reduction.Build(net, length).Dimacs(cmd.OutOrStdout())
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <network>",
	Short: "Export the network as a Graphviz digraph",
	Long: `Outputs a Graphviz DOT description of the network. With --length, or when
--max-length is positive, the path found is highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := tunnel.Load(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		length, _ := flags.GetInt("length")
		maxLength, _ := flags.GetInt("max-length")
		var highlight []tunnel.Edge
		if flags.Changed("length") || maxLength > 0 {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			finder := pathfind.New(cfg.solver, cfg.logger)
			var p *pathfind.Path
			if flags.Changed("length") {
				p, err = finder.Solve(net, length)
			} else {
				p, err = finder.Shortest(net, maxLength)
			}
			switch {
			case errors.Is(err, pathfind.ErrNoPath):
				cfg.logger.Warn("no path to highlight", "err", err)
			case err != nil:
				return err
			default:
				highlight = p.Edges()
			}
		}
		return tunnel.WriteDOT(cmd.OutOrStdout(), net, highlight)
	},
}

func init() {
	dimacsCmd.Flags().IntP("length", "l", 1, "length of the paths")
	graphCmd.Flags().IntP("length", "l", 0, "length of the highlighted path")
	graphCmd.Flags().Int("max-length", 0, "look for the shortest path up to that length and highlight it")
	rootCmd.AddCommand(dimacsCmd, graphCmd)
}
