package view

// Disjoint reports whether u and v provably reference non-overlapping sets
// of buffer offsets.
//
// The test is conservative: a true result guarantees no overlap, but a
// false result only means overlap could not be ruled out — it does not
// assert that the views actually overlap. Different Base values are always
// disjoint (buffers never alias across allocations). For views sharing a
// Base, the bounding offset range of each view is computed and the two
// ranges are checked for intersection; if the ranges don't intersect, the
// offset sets can't either.
func Disjoint(u, v View) bool {
	if !sameBase(u, v) {
		return true
	}

	uLo, uHi := u.offsetBounds()
	vLo, vHi := v.offsetBounds()

	return uHi < vLo || vHi < uLo
}

// Aligned reports whether u and v enumerate exactly the same offsets in
// the same order: equal Base, Start, NDim, and component-wise equal Shape
// and Stride. Alignment is the strongest safe form of overlap — a kernel
// may treat the two views as pointwise interchangeable.
func Aligned(u, v View) bool {
	if !sameBase(u, v) || u.Start != v.Start || u.NDim != v.NDim {
		return false
	}
	for j := 0; j < u.NDim; j++ {
		if u.Shape[j] != v.Shape[j] || u.Stride[j] != v.Stride[j] {
			return false
		}
	}

	return true
}
