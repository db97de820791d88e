package extents

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		items    []any
		expected []Component[float64]
	}{
		{"nothing", nil, comps[float64]()},
		{"scalar", []any{5.0}, comps(Point(5.0))},
		{"int scalar", []any{5}, comps(Point(5.0))},
		{"singleton list", []any{[]float64{1.0}}, comps(Point(1.0))},
		{"pair list is closed", []any{[]float64{1.0, 2.0}}, comps(Span(1.0, 2.0))},
		{"pair array is open", []any{[2]float64{1.0, 2.0}}, comps(OpenSpan(1.0, 2.0))},
		{"triple with type", []any{[]any{1.0, 2.0, OpenClosed}},
			comps(NewComponent(1.0, 2.0, OpenClosed))},
		{"triple with alias", []any{[]any{1, 2, "[)"}},
			comps(NewComponent(1.0, 2.0, ClosedOpen))},
		{"component spliced", []any{OpenSpan(3.0, 4.0)}, comps(OpenSpan(3.0, 4.0))},
		{"interval spliced", []any{New(Span(0.0, 1.0), Point(5.0))},
			comps(Span(0.0, 1.0), Point(5.0))},
		// The list form is closed at 1, so it merges with the open pair
		// touching there; two open pairs would stay apart.
		{"mixed shapes merge", []any{[]float64{0.0, 1.0}, [2]float64{1.0, 2.0}},
			comps(NewComponent(0.0, 2.0, ClosedOpen))},
		{"scalars collapse", []any{1.0, 1, []float64{1.0}}, comps(Point(1.0))},
	}

	for _, test := range tests {
		got, err := Build[float64](test.items...)
		if err != nil {
			t.Fatalf("%s: Build failed: %v", test.name, err)
		}
		if !reflect.DeepEqual(got.Components(), test.expected) {
			t.Errorf("%s: Build = %s, expected %v", test.name, got, test.expected)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		items    []any
		expected error
	}{
		{"empty list", []any{[]float64{}}, ErrInvalidShape},
		{"overlong list", []any{[]float64{1.0, 2.0, 3.0}}, ErrInvalidShape},
		{"short any list", []any{[]any{1.0, 2.0}}, ErrInvalidShape},
		{"non-scalar boundary", []any{[]any{"low", 2.0, Closed}}, ErrInvalidShape},
		{"bad closure tag", []any{[]any{1.0, 2.0, 7}}, ErrInvalidShape},
		{"bad closure alias", []any{[]any{1.0, 2.0, "klosed"}}, ErrInvalidAlias},
		{"unsupported value", []any{struct{}{}}, ErrUnsupportedValue},
		{"string value", []any{"5"}, ErrUnsupportedValue},
	}

	for _, test := range tests {
		if _, err := Build[float64](test.items...); !errors.Is(err, test.expected) {
			t.Errorf("%s: Build = %v, expected %v", test.name, err, test.expected)
		}
	}
}

func TestBuildFloat32(t *testing.T) {
	got, err := Build[float32](1.0, []any{2, 3, Open})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	expected := []Component[float32]{Point[float32](1.0), OpenSpan[float32](2.0, 3.0)}
	if !reflect.DeepEqual(got.Components(), expected) {
		t.Errorf("Build[float32] = %s, expected %v", got, expected)
	}
}
