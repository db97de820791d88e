package extents

import "github.com/cs-au-dk/extents/utils"

// Complement inverts the interval under the extended real line. The four
// branches cover which of the overall extrema already sit at ±∞, since both
// the number of resulting pieces and the placement of the infinite
// sentinels differ in each. Every gap boundary takes the inverted closure
// of the component that bounded it; the infinite sentinels are always open.
func (iv Interval[T]) Complement() Interval[T] {
	if len(iv.endpoints) == 0 {
		return fromEndpoints([]T{negInf[T](), posInf[T]()})
	}

	comps := iv.Components()
	closed := make([]bool, 0, 2*len(comps))
	for _, c := range comps {
		closed = append(closed, !c.Type.IsLeftClosed(), !c.Type.IsRightClosed())
	}

	first, last := iv.endpoints[0], iv.endpoints[len(iv.endpoints)-1]
	var compl []T
	switch {
	case first != negInf[T]() && last != posInf[T]():
		compl = append(append([]T{negInf[T]()}, iv.endpoints...), posInf[T]())
		closed = append(append([]bool{false}, closed...), false)
	case first == negInf[T]() && last == posInf[T]():
		compl = iv.endpoints[1 : len(iv.endpoints)-1]
		closed = closed[1 : len(closed)-1]
	case first == negInf[T]():
		compl = append([]T{}, iv.endpoints[1:]...)
		compl = append(compl, posInf[T]())
		closed = append(closed[1:], false)
	default:
		compl = append([]T{negInf[T]()}, iv.endpoints[:len(iv.endpoints)-1]...)
		closed = append([]bool{false}, closed[:len(closed)-1]...)
	}

	out := make([]Component[T], 0, len(compl)/2)
	for i := 0; i+1 < len(compl); i += 2 {
		out = append(out, NewComponent(compl[i], compl[i+1], TypeOf(closed[i], closed[i+1])))
	}
	return fromComponents(out)
}

// Union covers the points of either operand. It is re-normalizing
// construction over both operands' components; the constructor already
// performs the merge.
func (iv Interval[T]) Union(o Interval[T]) Interval[T] {
	return New(append(iv.Components(), o.Components()...)...)
}

// Intersect keeps the points common to both operands, via De Morgan's law
// over Complement and Union.
func (iv Interval[T]) Intersect(o Interval[T]) Interval[T] {
	return iv.Complement().Union(o.Complement()).Complement()
}

// Difference keeps the points of iv outside o.
func (iv Interval[T]) Difference(o Interval[T]) Interval[T] {
	return iv.Intersect(o.Complement())
}

// SymmetricDifference keeps the points belonging to exactly one operand.
func (iv Interval[T]) SymmetricDifference(o Interval[T]) Interval[T] {
	return iv.Difference(o).Union(o.Difference(iv))
}

// Extrema is the interval of the distinct boundary values, one degenerate
// point per value.
func (iv Interval[T]) Extrema() Interval[T] {
	comps := make([]Component[T], 0, len(iv.endpoints))
	var prev T
	for i, e := range iv.endpoints {
		if i > 0 && e == prev {
			continue
		}
		comps = append(comps, Point(e))
		prev = e
	}
	return fromComponents(comps)
}

// Midpoint is the interval of one degenerate point per component, each at
// (Inf+Sup)/2.
func (iv Interval[T]) Midpoint() Interval[T] {
	comps := make([]Component[T], 0, iv.Len())
	for _, c := range iv.Components() {
		comps = append(comps, Point((c.Inf+c.Sup)/2))
	}
	return fromComponents(comps)
}

// Hull spans from the global minimum endpoint to the global maximum across
// the inputs, taking left closure from the interval attaining the minimum
// and right closure from the one attaining the maximum. Memberless inputs
// are skipped; the hull of nothing is empty.
func Hull[T Scalar](intervals ...Interval[T]) Interval[T] {
	var populated []Interval[T]
	for _, iv := range intervals {
		if iv.Len() > 0 {
			populated = append(populated, iv)
		}
	}
	if len(populated) == 0 {
		return New[T]()
	}

	min := utils.MinBy(populated, func(a, b Interval[T]) bool {
		return a.endpoints[0] < b.endpoints[0]
	})
	max := utils.MaxBy(populated, func(a, b Interval[T]) bool {
		return a.endpoints[len(a.endpoints)-1] > b.endpoints[len(b.endpoints)-1]
	})

	minComps, maxComps := min.Components(), max.Components()
	left := minComps[0].Type.IsLeftClosed()
	right := maxComps[len(maxComps)-1].Type.IsRightClosed()
	return New(NewComponent(
		min.endpoints[0],
		max.endpoints[len(max.endpoints)-1],
		TypeOf(left, right),
	))
}

// UnionAll flattens all components of all inputs and normalizes once,
// equivalent to but cheaper than repeated pairwise Union.
func UnionAll[T Scalar](intervals ...Interval[T]) Interval[T] {
	var comps []Component[T]
	for _, iv := range intervals {
		comps = append(comps, iv.Components()...)
	}
	return New(comps...)
}

// Cast lifts a scalar to the degenerate one-point interval.
func Cast[T Scalar](v T) Interval[T] {
	return New(Point(v))
}

// Points builds the interval of degenerate points, one per value.
func Points[T Scalar](vs ...T) Interval[T] {
	comps := make([]Component[T], 0, len(vs))
	for _, v := range vs {
		comps = append(comps, Point(v))
	}
	return New(comps...)
}
