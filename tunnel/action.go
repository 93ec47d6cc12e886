package tunnel

import (
	"fmt"
	"strings"
)

// A Symbol is a cell value of the auxiliary stack carried along a path.
// In a tunnel network, each symbol stands for an encapsulation protocol.
type Symbol uint8

const (
	// A is the base symbol: every path starts and ends with the stack [A].
	A Symbol = iota
	// B is the other symbol.
	B
)

// Symbols lists all the symbols, in order.
var Symbols = [...]Symbol{A, B}

func (s Symbol) String() string {
	switch s {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// ParseSymbol returns the symbol named str.
func ParseSymbol(str string) (Symbol, error) {
	switch strings.TrimSpace(str) {
	case "A", "a":
		return A, nil
	case "B", "b":
		return B, nil
	default:
		return 0, fmt.Errorf("invalid stack symbol %q", str)
	}
}

// An Action is the way a move along an edge changes the stack.
// The set of actions is closed: it is implemented by Transmit, Push and Pop only.
type Action interface {
	fmt.Stringer
	action()
}

// Transmit leaves the stack unchanged. Its top must be Symbol.
type Transmit struct {
	Symbol Symbol
}

// Push turns a stack whose top is Lower into the same stack with Upper on top.
type Push struct {
	Lower, Upper Symbol
}

// Pop turns a stack whose two topmost cells are Lower and Upper into the same
// stack with Upper removed.
type Pop struct {
	Lower, Upper Symbol
}

func (Transmit) action() {}
func (Push) action()     {}
func (Pop) action()      {}

func (t Transmit) String() string { return fmt.Sprintf("transmit(%v)", t.Symbol) }
func (p Push) String() string     { return fmt.Sprintf("push(%v,%v)", p.Lower, p.Upper) }
func (p Pop) String() string      { return fmt.Sprintf("pop(%v,%v)", p.Lower, p.Upper) }

// HeightDelta returns the difference of stack height caused by a.
func HeightDelta(a Action) int {
	switch a.(type) {
	case Push:
		return 1
	case Pop:
		return -1
	default:
		return 0
	}
}

// AllActions returns the ten possible actions, in a fixed order.
func AllActions() []Action {
	res := make([]Action, 0, 10)
	for _, s := range Symbols {
		res = append(res, Transmit{s})
	}
	for _, lower := range Symbols {
		for _, upper := range Symbols {
			res = append(res, Push{lower, upper})
		}
	}
	for _, lower := range Symbols {
		for _, upper := range Symbols {
			res = append(res, Pop{lower, upper})
		}
	}
	return res
}

// ParseAction parses an action written either as "transmit(A)", "push(A,B)",
// "pop(B,A)" or with underscores, as in "transmit_A" or "push_A_B".
func ParseAction(str string) (Action, error) {
	s := strings.TrimSpace(str)
	var name string
	var args []string
	if i := strings.IndexByte(s, '('); i >= 0 && strings.HasSuffix(s, ")") {
		name = s[:i]
		args = strings.Split(s[i+1:len(s)-1], ",")
	} else {
		parts := strings.Split(s, "_")
		name, args = parts[0], parts[1:]
	}
	syms := make([]Symbol, len(args))
	for i, arg := range args {
		sym, err := ParseSymbol(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid action %q: %w", str, err)
		}
		syms[i] = sym
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "transmit", "t":
		if len(syms) == 1 {
			return Transmit{syms[0]}, nil
		}
	case "push":
		if len(syms) == 2 {
			return Push{syms[0], syms[1]}, nil
		}
	case "pop":
		if len(syms) == 2 {
			return Pop{syms[0], syms[1]}, nil
		}
	default:
		return nil, fmt.Errorf("invalid action %q: unknown kind %q", str, name)
	}
	return nil, fmt.Errorf("invalid action %q: wrong number of symbols", str)
}
