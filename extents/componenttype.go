package extents

import "github.com/pkg/errors"

// ComponentType describes which of the two endpoints of a component belong
// to the pointset it denotes.
type ComponentType uint8

const (
	// Closed is the [a, b] interval.
	Closed ComponentType = iota
	// Open is the (a, b) interval.
	Open
	// ClosedOpen is the [a, b) interval.
	ClosedOpen
	// OpenClosed is the (a, b] interval.
	OpenClosed
)

// The half-closed variants are also named by which side carries the closed,
// respectively open, endpoint.
const (
	HalfClosedLeft  = ClosedOpen
	HalfClosedRight = OpenClosed
	HalfOpenLeft    = OpenClosed
	HalfOpenRight   = ClosedOpen
)

// TypeOf looks up the component type with the given boundary closures.
// Total over all four combinations.
func TypeOf(isLeftClosed, isRightClosed bool) ComponentType {
	switch {
	case isLeftClosed && isRightClosed:
		return Closed
	case !isLeftClosed && !isRightClosed:
		return Open
	case isLeftClosed:
		return ClosedOpen
	default:
		return OpenClosed
	}
}

var typeAliases = map[string]ComponentType{
	// closed interval [a, b]
	"closed": Closed,
	"[]":     Closed,
	"[_]":    Closed,

	// open interval (a, b)
	"open": Open,
	"()":   Open,
	"(_)":  Open,

	// left closed interval [a, b)
	"closedopen":       ClosedOpen,
	"closed_open":      ClosedOpen,
	"half_closed_left": ClosedOpen,
	"half_open_right":  ClosedOpen,
	"[)":               ClosedOpen,

	// left open interval (a, b]
	"openclosed":        OpenClosed,
	"open_closed":       OpenClosed,
	"half_open_left":    OpenClosed,
	"half_closed_right": OpenClosed,
	"(]":                OpenClosed,
}

// TypeFromName looks up a component type by one of its fixed aliases, e.g.
// "closed", "[]", "open", "()", "[)" or "(]".
func TypeFromName(name string) (ComponentType, error) {
	t, ok := typeAliases[name]
	if !ok {
		return Closed, errors.Wrapf(ErrInvalidAlias, "`%s`", name)
	}
	return t, nil
}

// IsLeftClosed reports whether the left endpoint is included.
func (t ComponentType) IsLeftClosed() bool {
	return t == Closed || t == ClosedOpen
}

// IsRightClosed reports whether the right endpoint is included.
func (t ComponentType) IsRightClosed() bool {
	return t == Closed || t == OpenClosed
}

// IsLeftOpen reports whether the left endpoint is excluded.
func (t ComponentType) IsLeftOpen() bool {
	return !t.IsLeftClosed()
}

// IsRightOpen reports whether the right endpoint is excluded.
func (t ComponentType) IsRightOpen() bool {
	return !t.IsRightClosed()
}

// OpenGlyph is the display bracket opening a component of this type.
func (t ComponentType) OpenGlyph() string {
	switch t {
	case Closed, ClosedOpen:
		return "["
	case Open, OpenClosed:
		return "("
	}
	panic(errInternal)
}

// CloseGlyph is the display bracket closing a component of this type.
func (t ComponentType) CloseGlyph() string {
	switch t {
	case Closed, OpenClosed:
		return "]"
	case Open, ClosedOpen:
		return ")"
	}
	panic(errInternal)
}

// Invert flips both boundary closures: Closed↔Open, ClosedOpen↔OpenClosed.
func (t ComponentType) Invert() ComponentType {
	switch t {
	case Closed:
		return Open
	case Open:
		return Closed
	case ClosedOpen:
		return OpenClosed
	case OpenClosed:
		return ClosedOpen
	}
	panic(errInternal)
}

func (t ComponentType) String() string {
	return t.OpenGlyph() + t.CloseGlyph()
}

// leftCompare is the left boundary admission test: a ≤ b when the left
// endpoint is closed, a < b otherwise.
func leftCompare[T Scalar](t ComponentType, a, b T) bool {
	if t.IsLeftClosed() {
		return a <= b
	}
	return a < b
}

// rightCompare is the right boundary admission test: a ≤ b when the right
// endpoint is closed, a < b otherwise.
func rightCompare[T Scalar](t ComponentType, a, b T) bool {
	if t.IsRightClosed() {
		return a <= b
	}
	return a < b
}
