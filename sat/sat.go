// Package sat solves formulas with an external SAT solver.
//
// Two backends are available: the CDCL solver of gophersat, used by default,
// and gini. Both receive the CNF translation of the formula and return a model
// associating each variable name with its binding.
package sat

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/crillab/tunnelsat/formula"
)

// ErrUnknownBackend is returned by New for an unregistered backend name.
var ErrUnknownBackend = errors.New("unknown solver backend")

// A Status is the outcome of a resolution.
type Status int

const (
	// Indet means the solver stopped before proving anything.
	Indet Status = iota
	// Sat means the formula has a model.
	Sat
	// Unsat means the formula has no model.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "INDETERMINATE"
	}
}

// A Result is the status of a resolution and, if the status is Sat, a model.
type Result struct {
	Status Status
	Model  formula.Model
}

// A Solver decides whether formulas are satisfiable.
type Solver interface {
	Solve(f formula.Formula) (Result, error)
}

// Options configure the backends built by New.
type Options struct {
	// Timeout bounds the search, when the backend supports it.
	// Zero means no limit.
	Timeout time.Duration
	Logger  *slog.Logger
}

var backends = map[string]func(Options) Solver{
	"gophersat": func(o Options) Solver { return &Gophersat{Logger: o.Logger} },
	"gini":      func(o Options) Solver { return &Gini{Timeout: o.Timeout, Logger: o.Logger} },
}

// Default is the name of the default backend.
const Default = "gophersat"

// Names returns the names of the available backends, sorted.
func Names() []string {
	res := make([]string, 0, len(backends))
	for name := range backends {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// New returns the backend called name.
func New(name string, opts Options) (Solver, error) {
	if name == "" {
		name = Default
	}
	mk, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, Names())
	}
	return mk(opts), nil
}
