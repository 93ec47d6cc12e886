package tunnel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a network.
type File struct {
	Initial string     `yaml:"initial"`
	Final   string     `yaml:"final"`
	Nodes   []string   `yaml:"nodes,omitempty"`
	Edges   []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is the YAML representation of an edge and its capabilities.
type EdgeSpec struct {
	From    string   `yaml:"from"`
	To      string   `yaml:"to"`
	Actions Actions `yaml:"actions"`
}

// Actions is the YAML representation of the capabilities of an edge.
// Each item is either a string accepted by ParseAction or a mapping such as
// {kind: push, lower: A, upper: B}.
//
// In a flow sequence, YAML splits an unquoted push(A,B) on its comma: the
// fragments are joined back, so [push(A,B), transmit(B)] reads as expected.
type Actions []Action

type actionSpec struct {
	Kind   string `yaml:"kind"`
	Symbol string `yaml:"symbol"`
	Lower  string `yaml:"lower"`
	Upper  string `yaml:"upper"`
}

func (spec actionSpec) action() (Action, error) {
	kind := strings.ToLower(spec.Kind)
	if kind == "transmit" {
		sym, err := ParseSymbol(spec.Symbol)
		if err != nil {
			return nil, err
		}
		return Transmit{sym}, nil
	}
	if kind != "push" && kind != "pop" {
		return nil, fmt.Errorf("unknown action kind %q", spec.Kind)
	}
	lower, err := ParseSymbol(spec.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := ParseSymbol(spec.Upper)
	if err != nil {
		return nil, err
	}
	if kind == "push" {
		return Push{lower, upper}, nil
	}
	return Pop{lower, upper}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (as *Actions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: actions must be a list", node.Line)
	}
	res := make(Actions, 0, len(node.Content))
	var pending string
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			str := item.Value
			if pending != "" {
				str, pending = pending+","+str, ""
			}
			if strings.Contains(str, "(") && !strings.Contains(str, ")") {
				pending = str
				continue
			}
			a, err := ParseAction(str)
			if err != nil {
				return fmt.Errorf("line %d: %w", item.Line, err)
			}
			res = append(res, a)
		case yaml.MappingNode:
			if pending != "" {
				return fmt.Errorf("line %d: unterminated action %q", item.Line, pending)
			}
			var spec actionSpec
			if err := item.Decode(&spec); err != nil {
				return err
			}
			a, err := spec.action()
			if err != nil {
				return fmt.Errorf("line %d: %w", item.Line, err)
			}
			res = append(res, a)
		default:
			return fmt.Errorf("line %d: invalid action", item.Line)
		}
	}
	if pending != "" {
		return fmt.Errorf("line %d: unterminated action %q", node.Line, pending)
	}
	*as = res
	return nil
}

// LoadYAML reads a network described in YAML:
//
//	initial: s
//	final: d
//	nodes: [s, a, d]        # optional, fixes the node numbering
//	edges:
//	  - from: s
//	    to: a
//	    actions: [push(A,B), "transmit(A)"]
//	  - from: a
//	    to: d
//	    actions:
//	      - pop(A,B)
//	      - {kind: transmit, symbol: B}
func LoadYAML(r io.Reader) (*Graph, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("could not parse network: %w", err)
	}
	return f.Graph()
}

// Graph builds the network described by f.
func (f *File) Graph() (*Graph, error) {
	if f.Initial == "" {
		return nil, fmt.Errorf("no initial node declared")
	}
	if f.Final == "" {
		return nil, fmt.Errorf("no final node declared")
	}
	g := NewGraph()
	for _, n := range f.Nodes {
		g.AddNode(n)
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge #%d: missing endpoint", i)
		}
		g.AddEdge(g.AddNode(e.From), g.AddNode(e.To), e.Actions...)
	}
	g.SetInitial(g.AddNode(f.Initial))
	g.SetFinal(g.AddNode(f.Final))
	return g, nil
}

// Load reads the network stored at path.
// Files ending with .yaml or .yml are read as YAML, files ending with .tn are
// read with ParseText.
func Load(path string) (*Graph, error) {
	ext := filepath.Ext(path)
	if ext != ".yaml" && ext != ".yml" && ext != ".tn" {
		return nil, fmt.Errorf("invalid file format for %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	var g *Graph
	if ext == ".tn" {
		g, err = ParseText(f)
	} else {
		g, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	return g, nil
}
