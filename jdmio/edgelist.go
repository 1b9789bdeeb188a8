// SPDX-License-Identifier: MIT
// Package: jdmio
//
// edgelist.go - "u,v" edge lists.

package jdmio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jdmgraph/core"
)

// EdgeList is a parsed edge-list file.
type EdgeList struct {
	// Edges are normalized to U < V, duplicates dropped, in first-seen order.
	Edges []core.Edge
	// VertexCount is one more than the largest id seen, or 0 for no edges.
	VertexCount int
	// Duplicates counts lines naming an edge already read.
	Duplicates int
}

// ReadEdgeList parses "u,v" lines. Either endpoint order is accepted.
// Self-loops and ids at or above core.MaxVertices are skipped as line errors.
func ReadEdgeList(r io.Reader, log logrus.FieldLogger) (*EdgeList, *ReadReport, error) {
	el := &EdgeList{}
	seen := make(map[core.Edge]struct{})
	rep, err := scanRecords(r, 2, "edge", log, func(f []int64) error {
		u, v := f[0], f[1]
		if u >= core.MaxVertices || v >= core.MaxVertices {
			return fmt.Errorf("vertex id limit %d: %w", core.MaxVertices, core.ErrVertexRange)
		}
		if u == v {
			return ErrSelfLoop
		}
		if v < u {
			u, v = v, u
		}
		e := core.Edge{U: int(u), V: int(v)}
		if _, dup := seen[e]; dup {
			el.Duplicates++
			return nil
		}
		seen[e] = struct{}{}
		el.Edges = append(el.Edges, e)
		if e.V+1 > el.VertexCount {
			el.VertexCount = e.V + 1
		}
		return nil
	})

	return el, rep, err
}

// ReadEdgeListFile opens path and reads it with ReadEdgeList.
func ReadEdgeListFile(path string, log logrus.FieldLogger) (*EdgeList, *ReadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, accessErrorf(err, "open edge list %s", path)
	}
	defer f.Close()

	el, rep, err := ReadEdgeList(f, log)
	if err != nil {
		return nil, rep, errors.WithMessage(err, path)
	}
	log.WithFields(logrus.Fields{
		"file":       path,
		"nodes":      el.VertexCount,
		"edges":      len(el.Edges),
		"duplicates": el.Duplicates,
	}).Debug("edge list loaded")

	return el, rep, nil
}

// Graph builds a core.Graph over VertexCount vertices from the list.
func (el *EdgeList) Graph() (*core.Graph, error) {
	return core.FromEdges(el.VertexCount, el.Edges)
}

// WriteEdgeList writes one "u,v" line per edge, in order.
func WriteEdgeList(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%s\n", e); err != nil {
			return accessErrorf(err, "write edge")
		}
	}
	if err := bw.Flush(); err != nil {
		return accessErrorf(err, "flush edge list")
	}

	return nil
}
