package sat

import (
	"log/slog"
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/internal/logging"
)

// Gophersat solves formulas with the gophersat CDCL solver.
// It does not support timeouts.
type Gophersat struct {
	Logger *slog.Logger
}

func (g *Gophersat) Solve(f formula.Formula) (Result, error) {
	logger := logging.OrNop(g.Logger)
	start := time.Now()
	cnf := formula.ToCNF(f)
	if cnf.Trivial() {
		logger.Debug("formula is trivially unsat", "backend", "gophersat")
		return Result{Status: Unsat}, nil
	}
	if len(cnf.Clauses) == 0 {
		return Result{Status: Sat, Model: formula.Model{}}, nil
	}
	s := solver.New(solver.ParseSlice(cnf.Clauses))
	status := s.Solve()
	logger.Debug("solved",
		"backend", "gophersat",
		"vars", cnf.NbVars(),
		"clauses", len(cnf.Clauses),
		"status", status,
		"conflicts", s.Stats.NbConflicts,
		"decisions", s.Stats.NbDecisions,
		"elapsed", time.Since(start))
	switch status {
	case solver.Sat:
		m := s.Model()
		return Result{
			Status: Sat,
			Model:  cnf.Model(func(idx int) bool { return idx <= len(m) && m[idx-1] }),
		}, nil
	case solver.Unsat:
		return Result{Status: Unsat}, nil
	default:
		return Result{Status: Indet}, nil
	}
}
