package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/kpaths/core"
)

var errUnknownExtension = errors.New("unknown graph file extension")

// graphFile is the on-disk graph description.
//
//	directed: true
//	vertices: [X]
//	edges:
//	  - {from: A, to: B, attrs: {weight: 2}}
type graphFile struct {
	Directed bool       `json:"directed" yaml:"directed"`
	Vertices []string   `json:"vertices" yaml:"vertices"`
	Edges    []edgeSpec `json:"edges" yaml:"edges"`
}

type edgeSpec struct {
	From  string             `json:"from" yaml:"from"`
	To    string             `json:"to" yaml:"to"`
	Attrs map[string]float64 `json:"attrs" yaml:"attrs"`
}

// loadGraph decodes path by extension and builds the graph it describes.
func loadGraph(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var gf graphFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &gf)
	case ".json":
		err = json.Unmarshal(data, &gf)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownExtension, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return gf.build()
}

func (gf graphFile) build() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(gf.Directed))
	for _, v := range gf.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v, err)
		}
	}
	for i, e := range gf.Edges {
		if _, err := g.AddEdge(e.From, e.To, core.Attributes(e.Attrs)); err != nil {
			return nil, fmt.Errorf("edge #%d %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
