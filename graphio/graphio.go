// SPDX-License-Identifier: MIT

// Package graphio reads and writes YAML graph documents and plan reports.
//
// Graph document:
//
//	vertices:
//	  - {id: a, x: 0, y: 0}
//	  - {id: b, x: 3, y: 4}
//	edges:
//	  - {from: a, to: b, weight: 1.5}
//	  - {from: b, to: c}            # weight omitted: Euclidean distance of the endpoints
//
// Vertices referenced only by edges are created implicitly. Positions are
// stored as vertex metadata under builder.MetaX / builder.MetaY.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ftcenters/builder"
	"github.com/katalvlaran/ftcenters/core"
)

var (
	// ErrDuplicateVertex is returned when a vertex ID is listed twice.
	ErrDuplicateVertex = errors.New("graphio: duplicate vertex")

	// ErrMissingWeight is returned when an edge has no weight and an endpoint has no position.
	ErrMissingWeight = errors.New("graphio: edge weight missing and endpoints lack positions")

	// ErrBadDocument is returned for malformed documents.
	ErrBadDocument = errors.New("graphio: malformed document")
)

// VertexDoc is one vertex entry. X and Y are optional.
type VertexDoc struct {
	ID string   `yaml:"id"`
	X  *float64 `yaml:"x,omitempty"`
	Y  *float64 `yaml:"y,omitempty"`
}

// EdgeDoc is one undirected edge entry. A nil Weight is derived from positions.
type EdgeDoc struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// GraphDoc is the YAML graph document.
type GraphDoc struct {
	Vertices []VertexDoc `yaml:"vertices"`
	Edges    []EdgeDoc   `yaml:"edges"`
}

// Build converts the document into an undirected weighted graph.
func (d *GraphDoc) Build() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	pos := make(map[string]builder.Point, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: vertex %d has no id", ErrBadDocument, i)
		}
		if g.HasVertex(v.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVertex, v.ID)
		}
		if err := g.AddVertex(v.ID); err != nil {
			return nil, err
		}
		if (v.X == nil) != (v.Y == nil) {
			return nil, fmt.Errorf("%w: vertex %s needs both x and y", ErrBadDocument, v.ID)
		}
		if v.X != nil {
			pos[v.ID] = builder.Point{X: *v.X, Y: *v.Y}
			_ = g.SetMetadata(v.ID, builder.MetaX, *v.X)
			_ = g.SetMetadata(v.ID, builder.MetaY, *v.Y)
		}
	}

	for i, e := range d.Edges {
		w, err := edgeWeight(e, pos)
		if err != nil {
			return nil, fmt.Errorf("edge %d (%s–%s): %w", i, e.From, e.To, err)
		}
		if _, err = g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("edge %d (%s–%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

func edgeWeight(e EdgeDoc, pos map[string]builder.Point) (float64, error) {
	if e.Weight != nil {
		return *e.Weight, nil
	}
	p, ok1 := pos[e.From]
	q, ok2 := pos[e.To]
	if !ok1 || !ok2 {
		return 0, ErrMissingWeight
	}

	return p.Dist(q), nil
}

// FromGraph snapshots g as a document in deterministic order.
func FromGraph(g *core.Graph) *GraphDoc {
	d := &GraphDoc{}
	for _, id := range g.Vertices() {
		v := VertexDoc{ID: id}
		x, okX := floatMeta(g, id, builder.MetaX)
		y, okY := floatMeta(g, id, builder.MetaY)
		if okX && okY {
			v.X, v.Y = &x, &y
		}
		d.Vertices = append(d.Vertices, v)
	}
	for _, e := range g.Edges() {
		w := e.Weight
		d.Edges = append(d.Edges, EdgeDoc{From: e.From, To: e.To, Weight: &w})
	}

	return d
}

func floatMeta(g *core.Graph, id, key string) (float64, bool) {
	raw, ok := g.Metadata(id, key)
	if !ok {
		return 0, false
	}
	f, ok := raw.(float64)
	if !ok || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// Decode reads a graph document from r.
func Decode(r io.Reader) (*core.Graph, error) {
	var d GraphDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewGraph(core.WithWeighted()), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return d.Build()
}

// Encode writes g to w as a graph document.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return err
	}

	return enc.Close()
}

// LoadFile reads the graph document at path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// SaveFile writes g to path, replacing any existing file.
func SaveFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
