// Package mutate perturbs a Joint Degree Matrix while keeping its degree
// sequence fixed.
//
// The sampler works on the aggregate form (matrix.Symmetric). One step is a
// capacity-bounded disjoint 2-swap:
//
//	pick (i1,j1) and (i2,j2), i<j, both with J >= 2, four distinct indices
//	move m ∈ [1,maxK] from J[i1][j1], J[i2][j2] to J[i1][j2], J[i2][j1]
//
// where maxK is the smallest of the two source counts and the headroom of
// the two destination cells. Every write is mirrored, so J stays symmetric
// and every row sum (the stub total of a degree class) is unchanged. The class
// sizes, and therefore the capacities, are recomputed from the live matrix on
// each step.
//
// Randomness is explicit: pass WithSeed or WithRand. Run returns
// ErrNeedRandSource otherwise.
//
// Termination:
//
//	ErrNoSwapCandidates      - the matrix has no two disjoint cells with J >= 2.
//	ErrSampleBudgetExhausted - one step drew WithSampleBudget candidate pairs
//	                           without finding an admissible swap.
package mutate
