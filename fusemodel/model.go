package fusemodel

// Model selects which legality predicate the fuse engine applies. Broadest
// is the data-flow floor: every other model ends with the Broadest test,
// so any pair another model accepts, Broadest accepts too. Among the
// same-shape models, SameShapeRange and SameShapeRandom each accept
// everything SameShape accepts, and SameShapeRangeRandom accepts
// everything either of them accepts; SameShapeRange and SameShapeRandom
// are not ordered against each other.
type Model int

const (
	// Unset is the sentinel zero value: no model has been resolved yet.
	Unset Model = iota

	// Broadest is the data-flow floor: any pair whose memory footprints
	// are disjoint-or-aligned may fuse, regardless of opcode shape.
	Broadest

	// SameShape additionally requires both instructions to be
	// elementwise with matching operand shapes.
	SameShape

	// SameShapeRange is SameShape, relaxed to also admit RANGE.
	SameShapeRange

	// SameShapeRandom is SameShape, relaxed to also admit RANDOM.
	SameShapeRandom

	// SameShapeRangeRandom is SameShape, relaxed to admit RANGE or
	// RANDOM.
	SameShapeRangeRandom

	// SameShapeGenerate1DReduce is the richest model: elementwise plus
	// generators plus reductions whose input is rank ≤ 1, excluding
	// accumulate opcodes entirely.
	SameShapeGenerate1DReduce
)

// names is the single source of truth for canonical spellings, used by
// both Text and Resolve.
var names = map[Model]string{
	Broadest:                  "broadest",
	SameShape:                 "same_shape",
	SameShapeRange:            "same_shape_range",
	SameShapeRandom:           "same_shape_random",
	SameShapeRangeRandom:      "same_shape_range_random",
	SameShapeGenerate1DReduce: "same_shape_generate_1dreduce",
}

// byName is derived from names for case-insensitive lookup in Resolve.
var byName = func() map[string]Model {
	m := make(map[string]Model, len(names))
	for model, n := range names {
		m[n] = model
	}
	return m
}()

// Default is the model selected when BH_FUSE_MODEL is unset or invalid.
const Default = Broadest

// Text maps a Model to its canonical lower-snake-case name. Unknown values
// (including Unset) map to "unknown".
func Text(m Model) string {
	if n, ok := names[m]; ok {
		return n
	}
	return "unknown"
}

// All returns the six named models in relaxation order, Broadest first.
// It is used by tests asserting the monotonicity property across models
// and by tooling that needs to enumerate recognized names.
func All() []Model {
	return []Model{
		Broadest,
		SameShape,
		SameShapeRange,
		SameShapeRandom,
		SameShapeRangeRandom,
		SameShapeGenerate1DReduce,
	}
}
