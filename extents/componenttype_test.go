package extents

import (
	"errors"
	"testing"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		left, right bool
		expected    ComponentType
	}{
		{true, true, Closed},
		{false, false, Open},
		{true, false, ClosedOpen},
		{false, true, OpenClosed},
	}

	for _, test := range tests {
		if got := TypeOf(test.left, test.right); got != test.expected {
			t.Errorf("TypeOf(%v, %v) = %s, expected %s", test.left, test.right, got, test.expected)
		}
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		t, expected ComponentType
	}{
		{Closed, Open},
		{Open, Closed},
		{ClosedOpen, OpenClosed},
		{OpenClosed, ClosedOpen},
	}

	for _, test := range tests {
		if got := test.t.Invert(); got != test.expected {
			t.Errorf("%s.Invert() = %s, expected %s", test.t, got, test.expected)
		}
		if got := test.t.Invert().Invert(); got != test.t {
			t.Errorf("%s.Invert().Invert() = %s, expected identity", test.t, got)
		}
	}
}

func TestTypeFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected ComponentType
	}{
		{"closed", Closed},
		{"[]", Closed},
		{"[_]", Closed},
		{"open", Open},
		{"()", Open},
		{"(_)", Open},
		{"closedopen", ClosedOpen},
		{"closed_open", ClosedOpen},
		{"half_closed_left", ClosedOpen},
		{"half_open_right", ClosedOpen},
		{"[)", ClosedOpen},
		{"openclosed", OpenClosed},
		{"open_closed", OpenClosed},
		{"half_open_left", OpenClosed},
		{"half_closed_right", OpenClosed},
		{"(]", OpenClosed},
	}

	for _, test := range tests {
		got, err := TypeFromName(test.name)
		if err != nil {
			t.Fatalf("TypeFromName(%q) failed: %v", test.name, err)
		}
		if got != test.expected {
			t.Errorf("TypeFromName(%q) = %s, expected %s", test.name, got, test.expected)
		}
	}

	for _, name := range []string{"", "klosed", "[[", "half_open"} {
		if _, err := TypeFromName(name); !errors.Is(err, ErrInvalidAlias) {
			t.Errorf("TypeFromName(%q) = %v, expected ErrInvalidAlias", name, err)
		}
	}
}

func TestClosures(t *testing.T) {
	tests := []struct {
		t                       ComponentType
		leftClosed, rightClosed bool
		glyphs                  string
	}{
		{Closed, true, true, "[]"},
		{Open, false, false, "()"},
		{ClosedOpen, true, false, "[)"},
		{OpenClosed, false, true, "(]"},
	}

	for _, test := range tests {
		if test.t.IsLeftClosed() != test.leftClosed {
			t.Errorf("%s.IsLeftClosed() = %v", test.t, test.t.IsLeftClosed())
		}
		if test.t.IsRightClosed() != test.rightClosed {
			t.Errorf("%s.IsRightClosed() = %v", test.t, test.t.IsRightClosed())
		}
		if test.t.IsLeftOpen() == test.leftClosed {
			t.Errorf("%s.IsLeftOpen() = %v", test.t, test.t.IsLeftOpen())
		}
		if test.t.IsRightOpen() == test.rightClosed {
			t.Errorf("%s.IsRightOpen() = %v", test.t, test.t.IsRightOpen())
		}
		if test.t.String() != test.glyphs {
			t.Errorf("%s.String() = %s, expected %s", test.t, test.t.String(), test.glyphs)
		}
	}
}

func TestHalfClosedNames(t *testing.T) {
	if HalfClosedLeft != ClosedOpen || HalfOpenRight != ClosedOpen {
		t.Error("half-closed-left naming mismatch")
	}
	if HalfClosedRight != OpenClosed || HalfOpenLeft != OpenClosed {
		t.Error("half-closed-right naming mismatch")
	}
}
