// Package verify checks a realized graph against its target JDM
// independently of the realizer's own data structures.
//
// The edge list is loaded into a gonum simple.UndirectedGraph, degrees and
// the JDM are recomputed from that graph, and the result is compared cell by
// cell with the target (absent cells count as zero).
package verify
