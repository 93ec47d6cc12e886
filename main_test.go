package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts back the default value of every flag: commands are global
// and keep their flags from one execution to the next.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

// run executes the CLI with args, starting from default flag values.
func run(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSolveCommand(t *testing.T) {
	for _, file := range []string{"testdata/tunnels.tn", "testdata/tunnels.yaml"} {
		for _, solver := range []string{"gophersat", "gini"} {
			out := run(t, "solve", "--solver", solver, "--trace", file)
			assert.True(t, strings.HasPrefix(out, "SATISFIABLE\nlength: 3\ns -push(A,B)-> r1 -transmit(B)-> r2 -pop(A,B)-> d\n"), out)
			assert.Contains(t, out, "  0: push(A,B)    s (height 0) -> r1 (height 1)\n")
			assert.Contains(t, out, "At pos 2:\nState: (r2,1)\nStack: |A|B|\n")
			assert.NotContains(t, out, "Warning")
		}
	}
	out := run(t, "solve", "-l", "2", "testdata/tunnels.tn")
	assert.Equal(t, "UNSATISFIABLE\nno path of length 2\n", out)
}

func TestDimacsCommand(t *testing.T) {
	out := run(t, "dimacs", "-l", "1", "testdata/tunnels.tn")
	assert.True(t, strings.HasPrefix(out, "p cnf "), out)
	assert.Contains(t, out, "c x[node=0,pos=0,height=0]=")
	assert.Contains(t, out, "c y[A,pos=1,height=0]=")
}

func TestGraphCommand(t *testing.T) {
	out := run(t, "graph", "--max-length", "5", "testdata/tunnels.tn")
	assert.Contains(t, out, `"s" -> "r1" [label="push(A,B)", color=red, penwidth=2];`)
	assert.Contains(t, out, `"s" -> "d" [label="push(A,B)"];`)
	out = run(t, "graph", "testdata/tunnels.tn")
	assert.NotContains(t, out, "color=red")
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"solve", "testdata/missing.tn"},
		{"solve", "--solver", "minisat", "testdata/tunnels.tn"},
		{"solve", "--log-level", "loud", "testdata/tunnels.tn"},
		{"dimacs"},
	} {
		resetFlags()
		rootCmd.SetArgs(args)
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		assert.Error(t, rootCmd.Execute(), "%v", args)
	}
}
