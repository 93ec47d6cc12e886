package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crillab/tunnelsat/pathfind"
	"github.com/crillab/tunnelsat/reduction"
	"github.com/crillab/tunnelsat/tunnel"
)

var solveCmd = &cobra.Command{
	Use:   "solve <network>",
	Short: "Look for a path in a network",
	Long: `Looks for a simple path from the initial to the final node of the network.
With --length, only paths of that length are considered. Otherwise, lengths are
tried in increasing order up to --max-length and the shortest path is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		net, err := tunnel.Load(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		length, _ := flags.GetInt("length")
		maxLength, _ := flags.GetInt("max-length")
		trace, _ := flags.GetBool("trace")

		finder := pathfind.New(cfg.solver, cfg.logger)
		var p *pathfind.Path
		if flags.Changed("length") {
			p, err = finder.Solve(net, length)
		} else {
			p, err = finder.Shortest(net, maxLength)
		}
		out := cmd.OutOrStdout()
		if errors.Is(err, pathfind.ErrNoPath) {
			statusColor(color.FgRed, cfg.colored).Fprintln(out, "UNSATISFIABLE")
			fmt.Fprintln(out, err)
			return nil
		}
		if err != nil {
			return err
		}
		return printPath(out, net, p, trace, cfg.colored)
	},
}

func statusColor(attr color.Attribute, colored bool) *color.Color {
	c := color.New(attr, color.Bold)
	if !colored {
		c.DisableColor()
	}
	return c
}

func printPath(w io.Writer, net tunnel.Network, p *pathfind.Path, trace, colored bool) error {
	statusColor(color.FgGreen, colored).Fprintln(w, "SATISFIABLE")
	fmt.Fprintf(w, "length: %d\n", p.Length)
	fmt.Fprintln(w, reduction.FormatPath(net, p.Steps))
	for i, s := range p.Steps {
		fmt.Fprintf(w, "%3d: %-12v %s (height %d) -> %s (height %d)\n",
			i, s.Action, net.Name(s.From), s.FromHeight, net.Name(s.To), s.ToHeight)
	}
	if !trace {
		return nil
	}
	return reduction.NewTrace(p.Model, net, p.Length).Write(w, colored)
}

func init() {
	solveCmd.Flags().IntP("length", "l", 0, "exact length of the path")
	solveCmd.Flags().Int("max-length", 20, "maximum length tried when --length is not set")
	solveCmd.Flags().Bool("trace", false, "print the stack at each position of the path")
	rootCmd.AddCommand(solveCmd)
}
