package extents

// Component is a single contiguous interval: an ordered (Inf, Sup) pair
// plus the closure of its two boundaries. Inf ≤ Sup is assumed rather than
// enforced; degenerate one-point components have Inf == Sup. Components are
// plain values and never mutated after construction.
type Component[T Scalar] struct {
	Inf, Sup T
	Type     ComponentType
}

// Point is the degenerate closed component [v].
func Point[T Scalar](v T) Component[T] {
	return Component[T]{Inf: v, Sup: v, Type: Closed}
}

// Span is the closed component [inf, sup].
func Span[T Scalar](inf, sup T) Component[T] {
	return Component[T]{Inf: inf, Sup: sup, Type: Closed}
}

// OpenSpan is the open component (inf, sup).
func OpenSpan[T Scalar](inf, sup T) Component[T] {
	return Component[T]{Inf: inf, Sup: sup, Type: Open}
}

// NewComponent builds a component with an explicit boundary closure.
func NewComponent[T Scalar](inf, sup T, t ComponentType) Component[T] {
	return Component[T]{Inf: inf, Sup: sup, Type: t}
}

// NewComponentNamed builds a component with the closure given by one of the
// fixed type aliases accepted by TypeFromName.
func NewComponentNamed[T Scalar](inf, sup T, name string) (Component[T], error) {
	t, err := TypeFromName(name)
	if err != nil {
		return Component[T]{}, err
	}
	return Component[T]{Inf: inf, Sup: sup, Type: t}, nil
}

// FromExtrema spans from c1's left boundary to c2's right boundary,
// inheriting the respective closures. Assumes c1.Inf ≤ c2.Sup; used when a
// sorted run of continuous components collapses into one.
func FromExtrema[T Scalar](c1, c2 Component[T]) Component[T] {
	return Component[T]{
		Inf:  c1.Inf,
		Sup:  c2.Sup,
		Type: TypeOf(c1.Type.IsLeftClosed(), c2.Type.IsRightClosed()),
	}
}

// AreContinuous reports whether c2 overlaps or touches c1, making the two
// eligible to merge into a single component. Either c2 starts within c1's
// right boundary, or c2's own left boundary admits c1.Sup as a starting
// point; the latter covers half-open touching, e.g. [0,1) and [1,2].
func AreContinuous[T Scalar](c1, c2 Component[T]) bool {
	return rightCompare(c1.Type, c2.Inf, c1.Sup) || leftCompare(c2.Type, c2.Inf, c1.Sup)
}

// Contains reports whether v lies within the component's boundaries.
func (c Component[T]) Contains(v T) bool {
	return leftCompare(c.Type, c.Inf, v) && rightCompare(c.Type, v, c.Sup)
}

// Length is the measure Sup - Inf.
func (c Component[T]) Length() T {
	return c.Sup - c.Inf
}

// IsPoint reports whether the component is degenerate.
func (c Component[T]) IsPoint() bool {
	return c.Inf == c.Sup
}

func (c Component[T]) String() string {
	opening := colorize.Glyph(c.Type.OpenGlyph())
	closing := colorize.Glyph(c.Type.CloseGlyph())
	if c.IsPoint() {
		return opening + formatBound(c.Inf) + closing
	}
	return opening + formatBound(c.Inf) + ", " + formatBound(c.Sup) + closing
}

// less orders components by (Inf, Sup).
func (c Component[T]) less(o Component[T]) bool {
	if c.Inf != o.Inf {
		return c.Inf < o.Inf
	}
	return c.Sup < o.Sup
}
