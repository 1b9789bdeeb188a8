// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRealize is the canonical name for the Realize constructor.
	MethodRealize = "Realize"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"

	methodNeighborSwitch = "neighborSwitch"
)

//-----------------------------------------------------------------------------
// Realizer budgets
//-----------------------------------------------------------------------------

// DefaultAttempts is the number of construction attempts Realize makes
// before surfacing ErrRepairExhausted.
const DefaultAttempts = 1

// DefaultDrawBudgetFactor is the number of pair draws granted per required edge.
const DefaultDrawBudgetFactor int64 = 1000

// DefaultDrawBudgetFloor is added to the per-edge allowance so tiny but
// crowded JDMs still get room for collisions.
const DefaultDrawBudgetFloor int64 = 1_000_000

//-----------------------------------------------------------------------------
// RandomSparse bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0

// MinRandomSparseVertices is the smallest vertex count RandomSparse accepts.
const MinRandomSparseVertices = 1
