package bohrium

import (
	"github.com/fossabot/bohrium/instr"
	"github.com/fossabot/bohrium/opcode"
	"github.com/fossabot/bohrium/view"
)

// disjointOrAligned reports whether x and y may safely coexist within a
// fused kernel per the broadest data-flow test: either is a constant (no
// view to check), or their views are disjoint, or their views are
// aligned. This is the only tool the predicates below use to reason about
// aliasing — see SPEC_FULL.md §4.1.
func disjointOrAligned(x, y instr.Operand) bool {
	if x.IsConst || y.IsConst {
		return true
	}
	return view.Disjoint(x.View, y.View) || view.Aligned(x.View, y.View)
}

// fuseBroadest is the data-flow floor every other predicate ends with
// (SPEC_FULL.md §4.3.1). Inside a fused kernel each output point is
// computed once, so the only permissible interaction between the two
// instructions' memory footprints is complete disjointness or exact
// alignment.
func fuseBroadest(a, b instr.Instruction) bool {
	if a.IsSystem() || b.IsSystem() {
		return true
	}

	bOut := b.Output()
	for _, x := range a.Operands {
		if !disjointOrAligned(bOut, x) {
			return false
		}
	}

	aOut := a.Output()
	for _, x := range b.Operands {
		if !disjointOrAligned(aOut, x) {
			return false
		}
	}

	return true
}

// shapeMatches reports whether every non-constant operand in ops has rank
// ndim and shape shape. Constants are skipped — they bypass shape checks
// entirely, per SPEC_FULL.md §4.3.2.
func shapeMatches(ops []instr.Operand, ndim int, shape []int) bool {
	for _, op := range ops {
		if op.IsConst {
			continue
		}
		if op.View.NDim != ndim {
			return false
		}
		for j := 0; j < ndim; j++ {
			if op.View.Shape[j] != shape[j] {
				return false
			}
		}
	}

	return true
}

// sameShapeFamily implements the shared shape scan behind fuse_same_shape
// and its RANGE/RANDOM-relaxed siblings (SPEC_FULL.md §4.3.2–§4.3.3,
// Design Note "Shared predicate bodies"): both instructions must be
// admitted by the opcode gate, every non-constant operand of both must
// match a's output shape, and the pair must still pass fuse_broadest.
func sameShapeFamily(a, b instr.Instruction, admit func(opcode.Opcode) bool) bool {
	if a.IsSystem() || b.IsSystem() {
		return true
	}
	if !admit(a.Opcode) || !admit(b.Opcode) {
		return false
	}

	out := a.Output().View
	if !shapeMatches(a.Operands, out.NDim, out.Shape) {
		return false
	}
	if !shapeMatches(b.Operands, out.NDim, out.Shape) {
		return false
	}

	return fuseBroadest(a, b)
}

// fuseSameShape requires both instructions to be elementwise with
// matching shapes (SPEC_FULL.md §4.3.2).
func fuseSameShape(a, b instr.Instruction) bool {
	return sameShapeFamily(a, b, opcode.IsElementwise)
}

// fuseSameShapeRange relaxes fuseSameShape to also admit RANGE.
func fuseSameShapeRange(a, b instr.Instruction) bool {
	return sameShapeFamily(a, b, func(op opcode.Opcode) bool {
		return op == opcode.Range || opcode.IsElementwise(op)
	})
}

// fuseSameShapeRandom relaxes fuseSameShape to also admit RANDOM.
func fuseSameShapeRandom(a, b instr.Instruction) bool {
	return sameShapeFamily(a, b, func(op opcode.Opcode) bool {
		return op == opcode.Random || opcode.IsElementwise(op)
	})
}

// fuseSameShapeRangeRandom relaxes fuseSameShape to admit RANGE or
// RANDOM. Per SPEC_FULL.md §9 (second open question), this is a gate on
// *each* instruction individually — both must each be RANGE, RANDOM, or
// elementwise — not "at least one is a generator".
func fuseSameShapeRangeRandom(a, b instr.Instruction) bool {
	return sameShapeFamily(a, b, func(op opcode.Opcode) bool {
		return opcode.IsGenerator(op) || opcode.IsElementwise(op)
	})
}

// fuseSameShapeGenerate1DReduce is the richest model (SPEC_FULL.md
// §4.3.4). Neither instruction may be an accumulate opcode; a reduction
// opcode's input (operand[1]) must have rank ≤ 1. The shape gate has
// three cases depending on which side is elementwise, with the
// both-non-elementwise combination always rejected. Generators (RANGE,
// RANDOM) carry only an output view and take the elementwise side of the
// shape gate.
func fuseSameShapeGenerate1DReduce(a, b instr.Instruction) bool {
	if a.IsSystem() || b.IsSystem() {
		return true
	}
	if opcode.IsAccumulate(a.Opcode) || opcode.IsAccumulate(b.Opcode) {
		return false
	}
	if opcode.IsReduction(a.Opcode) && a.Operands[1].View.NDim > 1 {
		return false
	}
	if opcode.IsReduction(b.Opcode) && b.Operands[1].View.NDim > 1 {
		return false
	}

	aElem := opcode.IsElementwise(a.Opcode) || opcode.IsGenerator(a.Opcode)
	bElem := opcode.IsElementwise(b.Opcode) || opcode.IsGenerator(b.Opcode)

	switch {
	case aElem && bElem:
		out := a.Output().View
		if !shapeMatches(a.Operands, out.NDim, out.Shape) {
			return false
		}
		if !shapeMatches(b.Operands, out.NDim, out.Shape) {
			return false
		}
	case aElem && !bElem:
		in := b.Operands[1].View
		if !shapeMatches(a.Operands, in.NDim, in.Shape) {
			return false
		}
	case !aElem && bElem:
		in := a.Operands[1].View
		if !shapeMatches(b.Operands, in.NDim, in.Shape) {
			return false
		}
	default:
		return false
	}

	// Computed once, per SPEC_FULL.md §9 (first open question): the
	// upstream source computes this result then recomputes it before
	// returning; that double call is not reproduced here.
	return fuseBroadest(a, b)
}
