// Package builder constructs simple undirected graphs on core.Graph with
// "functional options"-style configuration shared by every constructor.
//
// The package offers the following key components:
//
//   - Realize: the JDM realizer. It draws random vertex pairs from the degree
//     classes of a jdm.Partition until every (k,l) cell of the target JDM is
//     satisfied, repairing saturated endpoints with a neighbor switch.
//   - RandomSparse: the Erdős–Rényi G(n,p) comparison-graph generator.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the single RNG handle for a run.
//     – WithAttempts: restart construction after a repair exhaustion.
//     – WithDrawBudget: cap the number of random pair draws per attempt.
//     – WithLogger: logrus sink for per-attempt diagnostics.
//
// Guarantees:
//
//   - Determinism: the same JDM, options and seed give the same graph.
//   - Exactness: Realize never returns a graph whose recomputed JDM differs
//     from the target; it returns an error instead.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime failures are sentinel errors (ErrRepairExhausted, ...).
//
// Deviation from the unbounded reference loop: the pair-draw loop is bounded
// by a draw budget (DefaultDrawBudgetFactor·edges + DefaultDrawBudgetFloor by
// default). WithDrawBudget(0) restores the unbounded behaviour.
package builder
