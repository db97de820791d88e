package extents

import (
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
	uf "github.com/spakin/disjoint"

	"github.com/cs-au-dk/extents/utils"
)

// Interval is a canonical subset of the real line: an ordered, disjoint
// sequence of components, no two of which are continuous, alongside the
// flattened endpoint sequence used for logarithmic membership queries. The
// endpoint cache always holds 2*Len() values and mirrors the component
// sequence in lock-step. Intervals are immutable after construction; every
// transformation returns a fresh value.
type Interval[T Scalar] struct {
	comps     *immutable.List[Component[T]]
	endpoints []T
}

// New builds the canonical interval covering all the given components.
// Inputs may overlap, touch and arrive in any order; construction sorts
// them and merges every run of continuous components. The result is
// independent of input order, and re-normalizing it is the identity.
func New[T Scalar](comps ...Component[T]) Interval[T] {
	sorted := make([]Component[T], len(comps))
	copy(sorted, comps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].less(sorted[j]) })

	if len(sorted) > 1 {
		sorted = mergeContinuous(sorted)
	}
	return fromComponents(sorted)
}

// mergeContinuous unions sort neighbours that are continuous and replaces
// every resulting group with its spanning component. Only neighbours are
// ever unioned, so the groups come out as contiguous runs of the sorted
// input.
func mergeContinuous[T Scalar](sorted []Component[T]) []Component[T] {
	els := make([]*uf.Element, len(sorted))
	for i := range els {
		els[i] = uf.NewElement()
		els[i].Data = i
	}
	for i := 0; i+1 < len(sorted); i++ {
		if AreContinuous(sorted[i], sorted[i+1]) {
			uf.Union(els[i], els[i+1])
		}
	}

	var runs [][]Component[T]
	for i, c := range sorted {
		if i == 0 || els[i].Find() != els[i-1].Find() {
			runs = append(runs, nil)
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], c)
	}

	merged := make([]Component[T], 0, len(runs))
	for _, run := range runs {
		// Sorting is by (Inf, Sup), so the first element of a run carries
		// the minimal Inf but not necessarily the maximal Sup.
		last := utils.MaxBy(run, func(a, b Component[T]) bool { return a.Sup > b.Sup })
		merged = append(merged, FromExtrema(run[0], last))
	}
	return merged
}

// fromComponents wraps components already known to be sorted, disjoint and
// pairwise non-continuous, skipping normalization. Internal constructions
// only.
func fromComponents[T Scalar](comps []Component[T]) Interval[T] {
	b := immutable.NewListBuilder[Component[T]]()
	endpoints := make([]T, 0, 2*len(comps))
	for _, c := range comps {
		b.Append(c)
		endpoints = append(endpoints, c.Inf, c.Sup)
	}
	return Interval[T]{comps: b.List(), endpoints: endpoints}
}

// fromEndpoints builds closed components from consecutive endpoint pairs
// already known to describe a canonical interval.
func fromEndpoints[T Scalar](endpoints []T) Interval[T] {
	comps := make([]Component[T], 0, len(endpoints)/2)
	for i := 0; i+1 < len(endpoints); i += 2 {
		comps = append(comps, Span(endpoints[i], endpoints[i+1]))
	}
	return fromComponents(comps)
}

// Len is the number of disjoint components.
func (iv Interval[T]) Len() int {
	if iv.comps == nil {
		return 0
	}
	return iv.comps.Len()
}

// Components copies out the canonical component sequence.
func (iv Interval[T]) Components() []Component[T] {
	comps := make([]Component[T], 0, iv.Len())
	if iv.comps == nil {
		return comps
	}
	itr := iv.comps.Iterator()
	for !itr.Done() {
		_, c := itr.Next()
		comps = append(comps, c)
	}
	return comps
}

// Endpoints copies out the flattened endpoint sequence.
func (iv Interval[T]) Endpoints() []T {
	out := make([]T, len(iv.endpoints))
	copy(out, iv.endpoints)
	return out
}

// At returns the i'th component.
func (iv Interval[T]) At(i int) (Component[T], error) {
	if i < 0 || i >= iv.Len() {
		return Component[T]{}, errors.Wrapf(ErrIndexOutOfRange, "%d of %d", i, iv.Len())
	}
	return iv.comps.Get(i), nil
}

// Slice returns the sub-interval of the components in [lo, hi). Bounds are
// clamped. The components stay disjoint and sorted, so the result needs no
// re-normalization and shares structure with the receiver.
func (iv Interval[T]) Slice(lo, hi int) Interval[T] {
	n := iv.Len()
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return New[T]()
	}

	sub := iv.comps.Slice(lo, hi)
	endpoints := make([]T, 0, 2*(hi-lo))
	itr := sub.Iterator()
	for !itr.Done() {
		_, c := itr.Next()
		endpoints = append(endpoints, c.Inf, c.Sup)
	}
	return Interval[T]{comps: sub, endpoints: endpoints}
}

// IdxRange selects the components in [Lo, Hi) when passed to Select.
type IdxRange struct{ Lo, Hi int }

// Select gathers the picked components and re-normalizes their union, since
// arbitrary picks may reintroduce adjacency. Picks are ints or IdxRanges;
// anything else fails with ErrInvalidIndex.
func (iv Interval[T]) Select(picks ...any) (Interval[T], error) {
	var comps []Component[T]
	for _, pick := range picks {
		switch p := pick.(type) {
		case int:
			c, err := iv.At(p)
			if err != nil {
				return Interval[T]{}, err
			}
			comps = append(comps, c)
		case IdxRange:
			comps = append(comps, iv.Slice(p.Lo, p.Hi).Components()...)
		default:
			return Interval[T]{}, errors.Wrapf(ErrInvalidIndex, "%T", pick)
		}
	}
	return New(comps...), nil
}

// Eq compares the flattened endpoint sequences elementwise. Boundary
// closures that leave the endpoints unchanged are not distinguished:
// [1, 2] and (1, 2) compare equal.
func (iv Interval[T]) Eq(o Interval[T]) bool {
	if len(iv.endpoints) != len(o.endpoints) {
		return false
	}
	for i, e := range iv.endpoints {
		if e != o.endpoints[i] {
			return false
		}
	}
	return true
}

func (iv Interval[T]) String() string {
	strs := make([]string, 0, iv.Len())
	for _, c := range iv.Components() {
		strs = append(strs, c.String())
	}
	return colorize.Name("Interval") + "(" + strings.Join(strs, ", ") + ")"
}
