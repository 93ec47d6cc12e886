package reduction

import (
	"fmt"

	"github.com/crillab/tunnelsat/tunnel"
)

// A ValidationError describes why a path is not a solution.
// Step is the index of the faulty step, or -1 if the path as a whole is wrong.
type ValidationError struct {
	Step   int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Step < 0 {
		return "invalid path: " + e.Reason
	}
	return fmt.Sprintf("invalid path: step %d: %s", e.Step, e.Reason)
}

func invalid(step int, format string, args ...interface{}) error {
	return &ValidationError{Step: step, Reason: fmt.Sprintf(format, args...)}
}

// Validate replays steps on net, starting with the stack [A], and checks that
// they form a simple path of the given length from the initial to the final
// node, that each action is allowed by its edge and consistent with the stack,
// that the stack never grows beyond StackSize(length) cells and that it ends as [A].
func Validate(net tunnel.Network, steps []Step, length int) error {
	if len(steps) != length {
		return invalid(-1, "%d steps, expected %d", len(steps), length)
	}
	if length == 0 {
		if net.Initial() != net.Final() {
			return invalid(-1, "empty path between distinct nodes")
		}
		return nil
	}
	for i, s := range steps {
		if s.From < 0 || s.From >= net.NumNodes() || s.To < 0 || s.To >= net.NumNodes() {
			return invalid(i, "unknown node")
		}
	}
	if steps[0].From != net.Initial() {
		return invalid(0, "starts on %s instead of %s", net.Name(steps[0].From), net.Name(net.Initial()))
	}
	if last := steps[length-1]; last.To != net.Final() {
		return invalid(length-1, "ends on %s instead of %s", net.Name(last.To), net.Name(net.Final()))
	}
	maxCells := StackSize(length)
	stack := []tunnel.Symbol{tunnel.A}
	visited := map[int]bool{net.Initial(): true}
	for i, s := range steps {
		if i > 0 && s.From != steps[i-1].To {
			return invalid(i, "does not start where step %d ended", i-1)
		}
		if visited[s.To] {
			return invalid(i, "visits %s twice", net.Name(s.To))
		}
		visited[s.To] = true
		if s.Action == nil {
			return invalid(i, "no action")
		}
		if !net.Allows(s.Edge(), s.Action) {
			return invalid(i, "%s -> %s does not allow %v", net.Name(s.From), net.Name(s.To), s.Action)
		}
		if s.FromHeight != len(stack)-1 {
			return invalid(i, "source height %d, stack height is %d", s.FromHeight, len(stack)-1)
		}
		top := stack[len(stack)-1]
		switch a := s.Action.(type) {
		case tunnel.Transmit:
			if top != a.Symbol {
				return invalid(i, "%v with %v on top of the stack", a, top)
			}
		case tunnel.Push:
			if top != a.Lower {
				return invalid(i, "%v with %v on top of the stack", a, top)
			}
			if len(stack) >= maxCells {
				return invalid(i, "stack overflow")
			}
			stack = append(stack, a.Upper)
		case tunnel.Pop:
			if len(stack) < 2 {
				return invalid(i, "stack underflow")
			}
			if top != a.Upper || stack[len(stack)-2] != a.Lower {
				return invalid(i, "%v with %v, %v on top of the stack", a, stack[len(stack)-2], top)
			}
			stack = stack[:len(stack)-1]
		}
		if delta := tunnel.HeightDelta(s.Action); s.ToHeight-s.FromHeight != delta {
			return invalid(i, "height goes from %d to %d, %v changes it by %d", s.FromHeight, s.ToHeight, s.Action, delta)
		}
		if s.ToHeight != len(stack)-1 {
			return invalid(i, "target height %d, stack height is %d", s.ToHeight, len(stack)-1)
		}
	}
	if len(stack) != 1 || stack[0] != tunnel.A {
		return invalid(-1, "ends with stack %v instead of [A]", stack)
	}
	return nil
}
