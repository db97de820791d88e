package extents

import (
	"sort"

	"github.com/pkg/errors"
)

// bisectLeft is the leftmost insertion point for v in the sorted endpoint
// sequence; bisectRight the rightmost.
func bisectLeft[T Scalar](endpoints []T, v T) int {
	return sort.Search(len(endpoints), func(i int) bool { return endpoints[i] >= v })
}

func bisectRight[T Scalar](endpoints []T, v T) int {
	return sort.Search(len(endpoints), func(i int) bool { return endpoints[i] > v })
}

// Contains reports scalar membership by binary search on the endpoint
// sequence: the insertion point identifies the only component that could
// own v, at index idx/2.
func (iv Interval[T]) Contains(v T) bool {
	idx := bisectLeft(iv.endpoints, v)
	if idx >= len(iv.endpoints) {
		return false
	}
	return iv.comps.Get(idx / 2).Contains(v)
}

// ContainsComponent reports whether the whole of c lies within a single
// component of iv. Both of c's boundaries are searched; boundaries landing
// in different owning components, or past the end of the endpoint
// sequence, reject.
func (iv Interval[T]) ContainsComponent(c Component[T]) bool {
	n := len(iv.endpoints)
	infIdx := bisectLeft(iv.endpoints, c.Inf)
	supIdx := bisectRight(iv.endpoints, c.Sup)
	if infIdx >= n || supIdx >= n || supIdx-infIdx > 1 {
		return false
	}

	owner := iv.comps.Get(infIdx / 2)
	return owner.Contains(c.Inf) && owner.Contains(c.Sup)
}

// ContainsInterval reports whether every component of o is contained in iv.
func (iv Interval[T]) ContainsInterval(o Interval[T]) bool {
	for _, c := range o.Components() {
		if !iv.ContainsComponent(c) {
			return false
		}
	}
	return true
}

// ContainsAny dispatches containment over the supported dynamic operand
// kinds: a scalar, a Component or an Interval. Other kinds fail with
// ErrUnsupportedOperand.
func (iv Interval[T]) ContainsAny(item any) (bool, error) {
	switch v := item.(type) {
	case Interval[T]:
		return iv.ContainsInterval(v), nil
	case Component[T]:
		return iv.ContainsComponent(v), nil
	case T:
		return iv.Contains(v), nil
	case float64:
		return iv.Contains(T(v)), nil
	case float32:
		return iv.Contains(T(v)), nil
	case int:
		return iv.Contains(T(v)), nil
	}
	return false, errors.Wrapf(ErrUnsupportedOperand, "%T", item)
}
