// SPDX-License-Identifier: MIT

// File: plan.go
// Role: The result of Solve and its invariant checks.
// Determinism:
//   - Centers are sorted by ID; each center's clients are sorted; assignments
//     are sorted by vertex ID.

package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/ftcenters/bfs"
	"github.com/katalvlaran/ftcenters/core"
)

// Monarch kinds reported on Center.Monarch.
const (
	MonarchMajor = "major"
	MonarchMinor = "minor"
)

// Center is one activated center and the vertices it serves.
type Center struct {
	ID string `yaml:"id"`

	// Clients holds every vertex served by ID, ID itself included.
	Clients []string `yaml:"clients"`

	// Reserve marks a failover center added to reach ⌈n/L⌉+α per component.
	Reserve bool `yaml:"reserve,omitempty"`

	// Monarch is MonarchMajor, MonarchMinor or empty when the center was
	// seated during re-assignment.
	Monarch string `yaml:"monarch,omitempty"`

	// Backups lists the minors a standard-mode major chose.
	Backups []string `yaml:"backups,omitempty"`

	// BackupOf names the major a standard-mode minor backs up.
	BackupOf string `yaml:"backup_of,omitempty"`

	// Component is the zero-based index of the connected component holding ID.
	Component int `yaml:"component"`
}

// Assignment maps one vertex to its center.
type Assignment struct {
	Vertex string `yaml:"vertex"`
	Center string `yaml:"center"`
}

// Plan is a feasible fault-tolerant clustering.
type Plan struct {
	RunID       string       `yaml:"run_id"`
	Mode        Mode         `yaml:"mode"`
	Threshold   float64      `yaml:"threshold"`
	Attempts    int          `yaml:"attempts"`
	Components  int          `yaml:"components"`
	Centers     []Center     `yaml:"centers"`
	Assignments []Assignment `yaml:"assignments"`
}

// CenterOf returns the center serving v.
func (p *Plan) CenterOf(v string) (string, bool) {
	i := sort.Search(len(p.Assignments), func(i int) bool { return p.Assignments[i].Vertex >= v })
	if i < len(p.Assignments) && p.Assignments[i].Vertex == v {
		return p.Assignments[i].Center, true
	}

	return "", false
}

// IsCenter reports whether v is an activated center.
func (p *Plan) IsCenter(v string) bool {
	c, ok := p.CenterOf(v)

	return ok && c == v
}

// Validate checks p against g and params:
//   - at most K centers, each serving itself and at most L clients;
//   - every vertex of g has exactly one center;
//   - every client shares a connected component with its center in the
//     subgraph of edges with weight ≤ p.Threshold.
//
// Errors wrap ErrInvalidPlan.
func (p *Plan) Validate(g *core.Graph, params Params) error {
	if g == nil {
		return ErrGraphNil
	}
	comps, err := bfs.Components(context.Background(), core.ThresholdView(g, p.Threshold))
	if err != nil {
		return err
	}

	return p.check(g.Vertices(), componentIndex(comps), params)
}

func componentIndex(comps [][]string) map[string]int {
	idx := make(map[string]int)
	for i, c := range comps {
		for _, v := range c {
			idx[v] = i
		}
	}

	return idx
}

func (p *Plan) check(vertices []string, comp map[string]int, params Params) error {
	if len(p.Centers) > params.MaxCenters {
		return fmt.Errorf("%w: %d centers exceed budget %d", ErrInvalidPlan, len(p.Centers), params.MaxCenters)
	}

	served := make(map[string]string, len(vertices))
	for _, c := range p.Centers {
		if len(c.Clients) > params.MaxClientsPerCenter {
			return fmt.Errorf("%w: center %s serves %d > %d", ErrInvalidPlan, c.ID, len(c.Clients), params.MaxClientsPerCenter)
		}
		self := false
		for _, v := range c.Clients {
			if prev, dup := served[v]; dup {
				return fmt.Errorf("%w: vertex %s served by %s and %s", ErrInvalidPlan, v, prev, c.ID)
			}
			served[v] = c.ID
			self = self || v == c.ID
			cv, okV := comp[v]
			cc, okC := comp[c.ID]
			if !okV || !okC {
				return fmt.Errorf("%w: center %s lists unknown vertex", ErrInvalidPlan, c.ID)
			}
			if cv != cc {
				return fmt.Errorf("%w: client %s outside the component of %s", ErrInvalidPlan, v, c.ID)
			}
		}
		if !self {
			return fmt.Errorf("%w: center %s does not serve itself", ErrInvalidPlan, c.ID)
		}
	}

	if len(served) != len(vertices) || len(p.Assignments) != len(vertices) {
		return fmt.Errorf("%w: %d of %d vertices assigned", ErrInvalidPlan, len(served), len(vertices))
	}
	for _, v := range vertices {
		c, ok := p.CenterOf(v)
		if !ok || served[v] != c {
			return fmt.Errorf("%w: vertex %s assignment mismatch", ErrInvalidPlan, v)
		}
	}

	return nil
}
