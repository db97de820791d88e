package extents

import "github.com/pkg/errors"

// Build assembles an interval from a heterogeneous value list, the closed
// set of raw shapes the library accepts:
//
//   - a scalar (T or any plain int/float kind): a degenerate closed point;
//   - a []T of length 1: a degenerate closed point;
//   - a []T of length 2: a Closed component;
//   - a [2]T pair: an Open component — the positional-pair shorthand
//     deliberately defaults to the opposite closure of the list form;
//   - a []any triple {inf, sup, closure}: a component with explicit
//     closure, given as a ComponentType or one of its string aliases;
//   - a Component or Interval: spliced in as-is.
//
// Sequence lengths outside 1-3 fail with ErrInvalidShape, any other value
// kind with ErrUnsupportedValue. The result is normalized as by New.
func Build[T Scalar](items ...any) (Interval[T], error) {
	var comps []Component[T]
	for _, item := range items {
		switch v := item.(type) {
		case Component[T]:
			comps = append(comps, v)
		case Interval[T]:
			comps = append(comps, v.Components()...)
		case []T:
			c, err := fromSeq(v)
			if err != nil {
				return Interval[T]{}, err
			}
			comps = append(comps, c)
		case [2]T:
			comps = append(comps, OpenSpan(v[0], v[1]))
		case []any:
			c, err := fromTriple[T](v)
			if err != nil {
				return Interval[T]{}, err
			}
			comps = append(comps, c)
		default:
			s, ok := toScalar[T](item)
			if !ok {
				return Interval[T]{}, errors.Wrapf(ErrUnsupportedValue, "%T", item)
			}
			comps = append(comps, Point(s))
		}
	}
	return New(comps...), nil
}

// fromSeq destructures the list shape: the single-value form duplicates the
// point, the pair form defaults to Closed.
func fromSeq[T Scalar](seq []T) (Component[T], error) {
	switch len(seq) {
	case 1:
		return Point(seq[0]), nil
	case 2:
		return Span(seq[0], seq[1]), nil
	}
	return Component[T]{}, errors.Wrapf(ErrInvalidShape, "length %d", len(seq))
}

// fromTriple destructures the {inf, sup, closure} shape.
func fromTriple[T Scalar](seq []any) (Component[T], error) {
	if len(seq) != 3 {
		return Component[T]{}, errors.Wrapf(ErrInvalidShape, "length %d", len(seq))
	}

	inf, infOk := toScalar[T](seq[0])
	sup, supOk := toScalar[T](seq[1])
	if !infOk || !supOk {
		return Component[T]{}, errors.Wrapf(ErrInvalidShape, "non-scalar boundary in %v", seq)
	}

	switch t := seq[2].(type) {
	case ComponentType:
		return NewComponent(inf, sup, t), nil
	case string:
		return NewComponentNamed(inf, sup, t)
	}
	return Component[T]{}, errors.Wrapf(ErrInvalidShape, "closure tag %T", seq[2])
}

func toScalar[T Scalar](v any) (T, bool) {
	switch v := v.(type) {
	case T:
		return v, true
	case float64:
		return T(v), true
	case float32:
		return T(v), true
	case int:
		return T(v), true
	case int64:
		return T(v), true
	case int32:
		return T(v), true
	case uint:
		return T(v), true
	}
	return 0, false
}
