package view

import "errors"

// MaxDim bounds the rank of any View the engine reasons about. It mirrors
// the BH_MAXDIM ceiling of the upstream runtime; nothing in this package
// allocates per-dimension, so the bound only guards Validate.
const MaxDim = 16

// Sentinel errors returned by Validate. They are never produced by Disjoint
// or Aligned: those two predicates assume well-formed input, per the
// fusibility engine's contract (malformed instructions are a caller bug,
// not a runtime condition the core recovers from).
var (
	ErrNegativeRank  = errors.New("view: ndim is negative")
	ErrRankTooLarge  = errors.New("view: ndim exceeds MaxDim")
	ErrShapeMismatch = errors.New("view: len(shape) != ndim")
	ErrStrideMismatch = errors.New("view: len(stride) != ndim")
	ErrNonPositiveExtent = errors.New("view: shape extent is not >= 1")
	ErrNilBase = errors.New("view: base is nil")
)

// Base is the opaque identity of a backing buffer. Two views share memory
// iff their Base values compare equal; the fusibility engine never inspects
// what a Base points to. Callers typically mint one with NewBase per
// logical allocation.
type Base any

// NewBase returns a fresh, globally unique Base token suitable for
// identifying one logical buffer. Two tokens returned by NewBase are never
// equal to each other.
func NewBase() Base {
	return new(struct{})
}

// View is a strided window into a backing buffer.
//
//	offset(i₀, …, i_{ndim-1}) = Start + Σ iⱼ·Stride[j],  0 ≤ iⱼ < Shape[j]
//
// A View of rank 0 (NDim == 0) denotes the single offset Start; Shape and
// Stride are ignored (and may be nil or empty) in that case.
type View struct {
	Base   Base
	Start  int
	NDim   int
	Shape  []int
	Stride []int
}

// Validate reports whether v is well-formed enough for Disjoint/Aligned to
// be meaningful. It exists for system boundaries (trace decoding, CLI
// input) that accept views from outside the process; the core predicates
// themselves never call it and have no defined behavior on malformed input.
func (v View) Validate() error {
	if v.Base == nil {
		return ErrNilBase
	}
	if v.NDim < 0 {
		return ErrNegativeRank
	}
	if v.NDim > MaxDim {
		return ErrRankTooLarge
	}
	if len(v.Shape) != v.NDim {
		return ErrShapeMismatch
	}
	if len(v.Stride) != v.NDim {
		return ErrStrideMismatch
	}
	for _, s := range v.Shape {
		if s < 1 {
			return ErrNonPositiveExtent
		}
	}
	return nil
}

// sameBase reports whether u and v reference the same backing buffer.
func sameBase(u, v View) bool {
	return u.Base == v.Base
}

// offsetBounds returns the inclusive [lo, hi] range of offsets v can
// produce. For NDim == 0 the range collapses to the single value Start.
func (v View) offsetBounds() (lo, hi int) {
	lo, hi = v.Start, v.Start
	for j := 0; j < v.NDim; j++ {
		extent := v.Shape[j] - 1
		step := extent * v.Stride[j]
		if step > 0 {
			hi += step
		} else {
			lo += step
		}
	}
	return lo, hi
}
