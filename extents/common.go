package extents

import (
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/cs-au-dk/extents/utils"
)

// Scalar is the endpoint domain. Complement introduces the infinities of
// the extended real line and Midpoint halves endpoint sums, so only
// floating point instantiations are admissible.
type Scalar interface {
	~float32 | ~float64
}

var colorize = struct {
	Bound func(...interface{}) string
	Glyph func(...interface{}) string
	Name  func(...interface{}) string
}{
	Bound: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Glyph: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Name: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
}

var (
	// ErrInvalidAlias is reported by boundary type lookups with an unknown name.
	ErrInvalidAlias = errors.New("unknown component type alias")
	// ErrInvalidShape is reported when a raw construction sequence has a
	// length outside 1-3.
	ErrInvalidShape = errors.New("invalid construction sequence shape")
	// ErrUnsupportedValue is reported when a raw construction value is of an
	// unsupported kind.
	ErrUnsupportedValue = errors.New("unsupported construction value")
	// ErrIndexOutOfRange is reported by component access outside the
	// component count.
	ErrIndexOutOfRange = errors.New("component index out of range")
	// ErrUnsupportedOperand is reported by containment tests against values
	// that are neither scalars, components nor intervals.
	ErrUnsupportedOperand = errors.New("unsupported containment operand")
	// ErrInvalidIndex is reported by selections with something other than an
	// integer or index range.
	ErrInvalidIndex = errors.New("invalid index kind")

	errInternal = errors.New("internal error")
)

func negInf[T Scalar]() T { return T(math.Inf(-1)) }
func posInf[T Scalar]() T { return T(math.Inf(1)) }

// formatBound renders an endpoint, using glyphs for the infinities.
func formatBound[T Scalar](v T) string {
	switch {
	case math.IsInf(float64(v), 1):
		return colorize.Bound("∞")
	case math.IsInf(float64(v), -1):
		return colorize.Bound("-∞")
	}
	return colorize.Bound(fmt.Sprintf("%v", v))
}
