// SPDX-License-Identifier: MIT

package cluster_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/ftcenters/builder"
	"github.com/katalvlaran/ftcenters/cluster"
	"github.com/katalvlaran/ftcenters/core"
)

// ExampleSolve clusters two triangles joined by a bridge into two centers of three.
func ExampleSolve() {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Barbell(3))
	if err != nil {
		panic(err)
	}
	params := cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 3, MaxFailedCenters: 1}
	plan, err := cluster.Solve(context.Background(), g, params,
		cluster.WithSeed(1),
		cluster.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("threshold=%g centers=%d\n", plan.Threshold, len(plan.Centers))
	for _, c := range plan.Centers {
		fmt.Println(len(c.Clients))
	}
	// Output:
	// threshold=1 centers=2
	// 3
	// 3
}
