// Package jdmgraph generates random simple graphs with a prescribed Joint
// Degree Matrix (JDM) and the tooling around them.
//
// A JDM counts, for every pair of degrees (k,l), how many edge endpoints join
// a degree-k vertex to a degree-l vertex. It fixes the degree sequence and the
// degree correlations of a graph while leaving its wiring free.
//
// Subpackages:
//
//	core/    - Graph Store: dense bitset adjacency over vertex ids [0,n)
//	jdm/     - JDM model, feasibility check, degree-class partition, diff
//	matrix/  - aggregate symmetric JDM used by the mutation sampler
//	builder/ - JDM realizer (random stub matching with neighbor switches)
//	           and the G(n,p) comparison generator
//	mutate/  - degree-preserving 2-swap sampler on the aggregate JDM
//	jdmio/   - "k,l,value" and "u,v" text formats, atomic output files
//	verify/  - gonum-backed recomputation of a graph's JDM
//	bfs/     - breadth-first search and connected components on core.Graph
//
// The jdm command (cmd/jdm) wires them into batch tools:
//
//	jdm realize input.jdm -o generated.graph --seed 42
//	jdm verify  input.jdm generated.graph --strict
//	jdm mutate  input.jdm 1000 mutated.jdm
//	jdm random  500 0.01 -o sample.jdm
//
// Every stochastic step takes its randomness from one explicit *rand.Rand, so
// a run is reproduced by its seed.
package jdmgraph
