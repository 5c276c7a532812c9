// SPDX-License-Identifier: MIT
// Package: ftcenters/builder
//
// api.go: public entry point composing constructors into one graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ftcenters/core"
)

// Constructor adds vertices and edges to g according to cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies each constructor in order.
//
// Errors: ErrConstructFailed on a nil constructor; constructor errors wrapped with context.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
