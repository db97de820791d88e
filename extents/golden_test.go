package extents

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
)

// TestRenderCatalogue pins the textual rendering of the representative
// interval shapes against a golden file.
func TestRenderCatalogue(t *testing.T) {
	color.NoColor = true

	catalogue := []struct {
		name string
		iv   Interval[float64]
	}{
		{"empty", New[float64]()},
		{"point", Cast(5.0)},
		{"closed", New(Span(0.0, 10.0))},
		{"open", New(OpenSpan(2.0, 3.0))},
		{"half-closed-left", New(NewComponent(0.0, 1.0, HalfClosedLeft))},
		{"half-closed-right", New(NewComponent(0.0, 1.0, HalfClosedRight))},
		{"merged", New(Span(0.0, 1.0), Span(1.0, 2.0))},
		{"disjoint", New(Span(1.0, 2.0), Span(4.0, 5.0))},
		{"complement", New(Span(7.0, 10.0)).Complement()},
		{"full-line", New[float64]().Complement()},
		{"points", Points(1.0, 2.0, 3.0)},
	}

	var buf bytes.Buffer
	for _, entry := range catalogue {
		fmt.Fprintf(&buf, "%-17s %s\n", entry.name, entry.iv)
	}

	g := goldie.New(t)
	g.Assert(t, t.Name(), buf.Bytes())
}
