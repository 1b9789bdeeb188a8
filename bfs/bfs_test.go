package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jdmgraph/bfs"
	"github.com/katalvlaran/jdmgraph/core"
)

// pathPlusIsolated builds 0-1-2-3 and 4-5 with 6 isolated.
func pathPlusIsolated(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(7, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 4, V: 5}})
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := pathPlusIsolated(t)
	_, err = bfs.BFS(g, 7)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndPaths(t *testing.T) {
	g := pathPlusIsolated(t)
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	require.Equal(t, []int{1, 0, 2, 3}, res.Order)
	require.Equal(t, []int{1, 0, 1, 2, bfs.Unreached, bfs.Unreached, bfs.Unreached}, res.Depth)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, path)

	_, err = res.PathTo(5)
	require.Error(t, err)
}

func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g := pathPlusIsolated(t)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	labels, count := bfs.Components(pathPlusIsolated(t))
	require.Equal(t, 3, count)
	require.Equal(t, []int{0, 0, 0, 0, 1, 1, 2}, labels)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	labels, count = bfs.Components(empty)
	require.Zero(t, count)
	require.Empty(t, labels)
}

func TestComponents_PerfectMatching(t *testing.T) {
	const n = 4096
	edges := make([]core.Edge, 0, n/2)
	for v := 0; v < n; v += 2 {
		edges = append(edges, core.Edge{U: v, V: v + 1})
	}
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	labels, count := bfs.Components(g)
	require.Equal(t, n/2, count)
	for v := 0; v < n; v++ {
		require.Equal(t, v/2, labels[v], "vertex %d", v)
	}
}

func TestComponents_MatchesBFSReach(t *testing.T) {
	g := pathPlusIsolated(t)
	labels, _ := bfs.Components(g)
	for v := 0; v < g.VertexCount(); v++ {
		res, err := bfs.BFS(g, v)
		require.NoError(t, err)
		for u, d := range res.Depth {
			require.Equal(t, d != bfs.Unreached, labels[u] == labels[v], "%d and %d", u, v)
		}
	}
}
