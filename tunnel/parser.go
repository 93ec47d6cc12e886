package tunnel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	tok   rune   // Kind of the last token read
	token string // Last token read
	g     *Graph
}

// ParseText parses a network from the given input Reader.
// The network is described by a sequence of statements, each one ending with a semicolon:
//
//	initial s;            // s is the initial node
//	final d;              // d is the final node
//	node n;               // declares n, even if no edge goes through it
//	s -> a : push(A,B);   // the edge s -> a allows the listed actions
//	a -> d : transmit(B) pop(A,B);
//
// Node names are identifiers, integers or quoted strings.
// Go-style comments are ignored.
func ParseText(r io.Reader) (*Graph, error) {
	p := &parser{g: NewGraph()}
	p.s.Init(r)
	p.s.Error = func(*scanner.Scanner, string) {}
	p.scan()
	var initial, final string
	for !p.eof {
		switch p.token {
		case "initial", "final", "node":
			kw := p.token
			p.scan()
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			switch kw {
			case "initial":
				initial = name
			case "final":
				final = name
			}
			p.g.AddNode(name)
		default:
			if err := p.parseEdge(); err != nil {
				return nil, err
			}
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	if initial == "" {
		return nil, fmt.Errorf("no initial node declared")
	}
	if final == "" {
		return nil, fmt.Errorf("no final node declared")
	}
	p.g.SetInitial(p.g.AddNode(initial))
	p.g.SetFinal(p.g.AddNode(final))
	return p.g, nil
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.tok = p.s.Scan()
	p.eof = p.tok == scanner.EOF
	p.token = p.s.TokenText()
}

func (p *parser) expect(token string) error {
	if p.eof {
		return fmt.Errorf("expected %q, found EOF", token)
	}
	if p.token != token {
		return fmt.Errorf("expected %q, found %q at %s", token, p.token, p.s.Position)
	}
	p.scan()
	return nil
}

func (p *parser) parseName() (string, error) {
	if p.eof {
		return "", fmt.Errorf("expected node name, found EOF")
	}
	var name string
	switch p.tok {
	case scanner.Ident, scanner.Int:
		name = p.token
	case scanner.String, scanner.RawString:
		s, err := strconv.Unquote(p.token)
		if err != nil {
			return "", fmt.Errorf("invalid node name %s at %s: %w", p.token, p.s.Position, err)
		}
		name = s
	default:
		return "", fmt.Errorf("expected node name, found %q at %s", p.token, p.s.Position)
	}
	p.scan()
	return name, nil
}

func (p *parser) parseEdge() error {
	from, err := p.parseName()
	if err != nil {
		return err
	}
	if err := p.expect("-"); err != nil {
		return err
	}
	if err := p.expect(">"); err != nil {
		return err
	}
	to, err := p.parseName()
	if err != nil {
		return err
	}
	if err := p.expect(":"); err != nil {
		return err
	}
	var actions []Action
	for !p.eof && p.token != ";" {
		a, err := p.parseAction()
		if err != nil {
			return err
		}
		actions = append(actions, a)
	}
	p.g.AddEdge(p.g.AddNode(from), p.g.AddNode(to), actions...)
	return nil
}

func (p *parser) parseAction() (Action, error) {
	if p.tok != scanner.Ident {
		return nil, fmt.Errorf("expected action, found %q at %s", p.token, p.s.Position)
	}
	pos := p.s.Position
	var sb strings.Builder
	sb.WriteString(p.token)
	p.scan()
	if p.token == "(" {
		for !p.eof && p.token != ")" {
			sb.WriteString(p.token)
			p.scan()
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		sb.WriteString(")")
	}
	a, err := ParseAction(sb.String())
	if err != nil {
		return nil, fmt.Errorf("at %s: %w", pos, err)
	}
	return a, nil
}
