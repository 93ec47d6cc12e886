// Package pathfind looks for paths in tunnel networks by reducing the problem
// to SAT.
//
// A path of length n goes from the initial to the final node of the network
// through n distinct edges, never visiting a node twice. Along the way, it
// carries a stack of symbols, starting and ending as [A]: each edge the path
// goes through must allow an action that is consistent with the stack.
package pathfind

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/internal/logging"
	"github.com/crillab/tunnelsat/reduction"
	"github.com/crillab/tunnelsat/sat"
	"github.com/crillab/tunnelsat/tunnel"
)

var (
	// ErrNoPath is returned when no path of the requested length(s) exists.
	ErrNoPath = errors.New("no path")
	// ErrIndeterminate is returned when the solver gave up.
	ErrIndeterminate = errors.New("solver could not decide")
)

// A Path is a solution found by the solver.
type Path struct {
	Length int
	Steps  []reduction.Step
	// Model is the model the steps were decoded from.
	Model formula.Model
}

// Finder looks for paths with a given solver.
type Finder struct {
	Solver sat.Solver
	Logger *slog.Logger
}

// New returns a Finder using s. A nil logger disables logging.
func New(s sat.Solver, logger *slog.Logger) *Finder {
	return &Finder{Solver: s, Logger: logging.OrNop(logger)}
}

// Solve looks for a path of exactly the given length.
// It returns an error wrapping ErrNoPath if there is none.
func (f *Finder) Solve(net tunnel.Network, length int) (*Path, error) {
	if length < 0 {
		return nil, fmt.Errorf("invalid length %d", length)
	}
	logger := logging.OrNop(f.Logger)
	start := time.Now()
	red := reduction.Build(net, length)
	res, err := f.Solver.Solve(red.Formula)
	if err != nil {
		return nil, fmt.Errorf("could not solve reduction for length %d: %w", length, err)
	}
	logger.Info("reduction solved", "length", length, "status", res.Status, "elapsed", time.Since(start))
	switch res.Status {
	case sat.Unsat:
		return nil, fmt.Errorf("%w of length %d", ErrNoPath, length)
	case sat.Indet:
		return nil, fmt.Errorf("%w for length %d", ErrIndeterminate, length)
	}
	steps, err := reduction.Decode(res.Model, net, length)
	if err != nil {
		return nil, fmt.Errorf("could not decode model for length %d: %w", length, err)
	}
	if err := reduction.Validate(net, steps, length); err != nil {
		return nil, fmt.Errorf("decoded path of length %d: %w", length, err)
	}
	return &Path{Length: length, Steps: steps, Model: res.Model}, nil
}

// Shortest looks for the shortest path of length at most maxLength.
// Lengths are tried in increasing order, starting at 0 when the initial and
// final nodes are the same, at 1 otherwise. A simple path is never longer than
// the number of nodes minus one, so longer lengths are not tried.
func (f *Finder) Shortest(net tunnel.Network, maxLength int) (*Path, error) {
	logger := logging.OrNop(f.Logger)
	if net.Initial() == net.Final() {
		return f.Solve(net, 0)
	}
	if maxLength > net.NumNodes()-1 {
		maxLength = net.NumNodes() - 1
	}
	for length := 1; length <= maxLength; length++ {
		p, err := f.Solve(net, length)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNoPath) {
			return nil, err
		}
		logger.Debug("no path", "length", length)
	}
	return nil, fmt.Errorf("%w of length at most %d", ErrNoPath, maxLength)
}

// Edges returns the edges p goes through.
func (p *Path) Edges() []tunnel.Edge {
	res := make([]tunnel.Edge, len(p.Steps))
	for i, s := range p.Steps {
		res[i] = s.Edge()
	}
	return res
}
