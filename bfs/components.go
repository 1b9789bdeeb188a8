package bfs

import "github.com/katalvlaran/jdmgraph/core"

// Components labels each vertex with a component index in [0,count).
// Components are numbered in order of their smallest vertex id; an isolated
// vertex is its own component.
// One label slice and one queue serve every start vertex, so the cost is a
// single sweep over the graph: O(n²/wordBits + E).
func Components(g *core.Graph) (labels []int, count int) {
	n := g.VertexCount()
	labels = filled(n, Unreached)
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if labels[v] != Unreached {
			continue
		}
		labels[v] = count
		queue = append(queue[:0], v)
		for head := 0; head < len(queue); head++ {
			for _, nbr := range g.Neighbors(queue[head]) {
				if labels[nbr] == Unreached {
					labels[nbr] = count
					queue = append(queue, nbr)
				}
			}
		}
		count++
	}

	return labels, count
}
