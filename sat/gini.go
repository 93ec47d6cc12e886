package sat

import (
	"log/slog"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/internal/logging"
)

// Gini solves formulas with the gini solver.
type Gini struct {
	// Timeout bounds the search. Zero means no limit.
	Timeout time.Duration
	Logger  *slog.Logger
}

func (s *Gini) Solve(f formula.Formula) (Result, error) {
	logger := logging.OrNop(s.Logger)
	start := time.Now()
	cnf := formula.ToCNF(f)
	if cnf.Trivial() {
		logger.Debug("formula is trivially unsat", "backend", "gini")
		return Result{Status: Unsat}, nil
	}
	if len(cnf.Clauses) == 0 {
		return Result{Status: Sat, Model: formula.Model{}}, nil
	}
	g := gini.New()
	for _, clause := range cnf.Clauses {
		for _, l := range clause {
			g.Add(giniLit(l))
		}
		g.Add(0) // clause terminator
	}
	var res int
	if s.Timeout > 0 {
		res = g.GoSolve().Try(s.Timeout)
	} else {
		res = g.Solve()
	}
	logger.Debug("solved",
		"backend", "gini",
		"vars", cnf.NbVars(),
		"clauses", len(cnf.Clauses),
		"result", res,
		"elapsed", time.Since(start))
	switch res {
	case 1:
		return Result{
			Status: Sat,
			Model:  cnf.Model(func(idx int) bool { return g.Value(z.Var(idx).Pos()) }),
		}, nil
	case -1:
		return Result{Status: Unsat}, nil
	default:
		return Result{Status: Indet}, nil
	}
}

// giniLit converts a DIMACS literal to a gini literal.
func giniLit(l int) z.Lit {
	if l < 0 {
		return z.Var(-l).Neg()
	}
	return z.Var(l).Pos()
}
