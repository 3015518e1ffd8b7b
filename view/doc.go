// Package view implements the strided array-view algebra that the
// fusibility engine uses to reason about aliasing.
//
// A View describes a window into a flat backing buffer: a base identity
// (compared by pointer, never by value), a starting element offset, a rank,
// and per-dimension shape/stride. Two predicates are exported:
//
//	Disjoint(u, v) — true only when the offset sets provably do not overlap.
//	Aligned(u, v)  — true only when u and v enumerate the same offsets in
//	                 the same order.
//
// Both are conservative: Disjoint may return false for views that happen
// not to overlap but can't be proven so cheaply, and neither predicate
// attempts a full interval-overlap decision procedure beyond what a single
// bounding-range test and a per-dimension stride check can establish.
package view
