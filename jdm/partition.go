// SPDX-License-Identifier: MIT
// Package: jdmgraph/jdm
//
// partition.go - degree classes, vertex-id blocks and residual stubs.
//
// Layout:
//   - Classes are ordered by ascending degree.
//   - Class i owns the contiguous id block [Offset_i, Offset_i + n_k).
//   - Residual[v] starts at the target degree of v and is mutated by the
//     realizer; Target[v] never changes.

package jdm

import (
	"fmt"

	"github.com/katalvlaran/jdmgraph/core"
)

// Class is one degree class: the vertices sharing target degree Degree.
type Class struct {
	Degree  int
	Members []int
}

// Size returns the number of member vertices.
func (c *Class) Size() int {
	return len(c.Members)
}

// Partition holds the degree classes of a run and its per-vertex stub state.
type Partition struct {
	Classes     []Class
	Target      []int // target degree per vertex id
	Residual    []int // free stubs per vertex id, within [0, Target[v]]
	VertexCount int

	byDegree map[int]int // degree → index in Classes
}

// NewPartition checks j and derives its degree classes. Vertex ids are
// assigned deterministically, so equal inputs give equal partitions.
func NewPartition(j *JDM) (*Partition, error) {
	if err := Check(j); err != nil {
		return nil, err
	}
	nk, err := ClassSizes(j)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, size := range nk {
		total += size
	}
	if total > core.MaxVertices {
		return nil, fmt.Errorf("NewPartition: %d vertices: %w", total, core.ErrAllocation)
	}

	degrees := j.Degrees()
	p := &Partition{
		Classes:     make([]Class, 0, len(degrees)),
		Target:      make([]int, total),
		Residual:    make([]int, total),
		VertexCount: int(total),
		byDegree:    make(map[int]int, len(degrees)),
	}
	next := 0
	for _, k := range degrees {
		size := int(nk[k])
		members := make([]int, size)
		for i := range members {
			v := next + i
			members[i] = v
			p.Target[v] = k
			p.Residual[v] = k
		}
		p.byDegree[k] = len(p.Classes)
		p.Classes = append(p.Classes, Class{Degree: k, Members: members})
		next += size
	}

	return p, nil
}

// Class returns the class of degree k, or nil when k is not a row of the JDM.
func (p *Partition) Class(k int) *Class {
	i, ok := p.byDegree[k]
	if !ok {
		return nil
	}

	return &p.Classes[i]
}

// Reset restores every residual to its target degree.
func (p *Partition) Reset() {
	copy(p.Residual, p.Target)
}

// Saturated reports whether every vertex has used its whole stub budget.
func (p *Partition) Saturated() bool {
	for _, r := range p.Residual {
		if r != 0 {
			return false
		}
	}

	return true
}
