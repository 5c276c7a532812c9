// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/ftcenters/core"
)

// ExampleThresholdView builds the subgraph of short edges used by a threshold attempt.
func ExampleThresholdView() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 3)
	_, _ = g.AddEdge("C", "A", 2)

	fmt.Println("weights:", g.DistinctWeights())
	v := core.ThresholdView(g, 2)
	fmt.Println("vertices:", v.Vertices())
	fmt.Println("B-C kept?", v.HasEdge("B", "C"))

	// Output:
	// weights: [1 2 3]
	// vertices: [A B C]
	// B-C kept? false
}
