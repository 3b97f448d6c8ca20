package topofile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkstate/core"
)

// yamlTopology is the on-disk document. Both sections are optional and are
// merged:
//
//	nodes:              # directed neighbor-cost map
//	  u: {v: 2, x: 1}
//	  v: {u: 2}
//	  x: {u: 1}
//	links:              # link list; bidirectional unless oneway
//	  - {from: x, to: y, cost: 1}
//	  - {from: y, to: z, cost: 2, oneway: true}
//
// Every neighbor named under nodes must itself be listed under nodes or be an
// endpoint in links.
type yamlTopology struct {
	Nodes map[string]map[string]int64 `yaml:"nodes,omitempty"`
	Links []yamlLink                  `yaml:"links,omitempty"`
}

type yamlLink struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Cost   int64  `yaml:"cost"`
	OneWay bool   `yaml:"oneway"`
}

// LoadYAML decodes a YAML topology document and validates it through
// core.FromCostMap.
func LoadYAML(r io.Reader) (*core.Graph, error) {
	var doc yamlTopology
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	cm := make(core.CostMap, len(doc.Nodes))
	for id, nbrs := range doc.Nodes {
		row := make(map[string]int64, len(nbrs))
		for to, c := range nbrs {
			row[to] = c
		}
		cm[id] = row
	}

	for i, l := range doc.Links {
		if l.From == "" || l.To == "" {
			return nil, fmt.Errorf("%w: links[%d]: from and to are required", ErrMalformed, i)
		}
		addCost(cm, l.From, l.To, l.Cost)
		if !l.OneWay {
			addCost(cm, l.To, l.From, l.Cost)
		}
	}

	g, err := core.FromCostMap(cm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return g, nil
}

func addCost(cm core.CostMap, from, to string, c int64) {
	if cm[from] == nil {
		cm[from] = map[string]int64{}
	}
	if cm[to] == nil {
		cm[to] = map[string]int64{}
	}
	cm[from][to] = c
}

// EncodeYAML writes g as a directed nodes: document that LoadYAML reads back
// into an identical graph. Node and neighbor keys are emitted sorted.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlTopology{Nodes: g.CostMap()}); err != nil {
		return fmt.Errorf("topofile: encode yaml: %w", err)
	}

	return enc.Close()
}
