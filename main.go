package main

import (
	"fmt"

	ext "github.com/cs-au-dk/extents/extents"
	"github.com/cs-au-dk/extents/utils"
)

func main() {
	utils.ParseArgs()

	free := ext.New(ext.OpenSpan(0.0, 100.0))
	forbidden := ext.New(
		ext.OpenSpan(1.0, 2.0),
		ext.OpenSpan(1.0, 40.0),
		ext.OpenSpan(2.01, 8.0),
		ext.OpenSpan(6.0, 10.0),
		ext.OpenSpan(50.0, 60.0),
	)

	fmt.Println("free:        ", free)
	fmt.Println("forbidden:   ", forbidden)
	fmt.Println("allowed:     ", forbidden.Complement().Intersect(free))

	a := ext.New(ext.Span(0.0, 10.0))
	b := ext.New(ext.OpenSpan(2.0, 3.0))
	fmt.Println("difference:  ", a.Difference(b))
	fmt.Println("xor:         ", a.SymmetricDifference(b))
	fmt.Println("hull:        ", ext.Hull(a, b, ext.Cast(42.0)))
	fmt.Println("midpoints:   ", forbidden.Midpoint())
	fmt.Println("extrema:     ", forbidden.Extrema())
	fmt.Println("complement:  ", a.Complement())
	fmt.Println("5 in free:   ", free.Contains(5.0))
	fmt.Println("100 in free: ", free.Contains(100.0))
}
