// SPDX-License-Identifier: MIT

package flow

// residual is an index-based residual network. Edge e and e^1 are a
// forward/backward pair; capacity moves between them as flow is pushed.
type residual struct {
	adj  [][]int
	to   []int
	cap  []int64
	cost []float64
}

func newResidual(n int) *residual {
	return &residual{adj: make([][]int, n)}
}

// addEdge inserts u→v with capacity c and cost w, plus its zero-capacity reverse.
// It returns the index of the forward edge.
func (r *residual) addEdge(u, v int, c int64, w float64) int {
	e := len(r.to)
	r.to = append(r.to, v, u)
	r.cap = append(r.cap, c, 0)
	r.cost = append(r.cost, w, -w)
	r.adj[u] = append(r.adj[u], e)
	r.adj[v] = append(r.adj[v], e+1)

	return e
}

// pushed returns the flow currently carried by forward edge e.
func (r *residual) pushed(e int) int64 { return r.cap[e^1] }

func (r *residual) push(e int, f int64) {
	r.cap[e] -= f
	r.cap[e^1] += f
}
