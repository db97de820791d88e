package utils

// MaxBy returns the first maximal element under gt: later elements replace
// the champion only when strictly greater. Panics on empty slices.
func MaxBy[E ~[]T, T any](l E, gt func(a, b T) bool) T {
	max := l[0]
	for _, x := range l[1:] {
		if gt(x, max) {
			max = x
		}
	}
	return max
}

// MinBy returns the first minimal element under lt: later elements replace
// the champion only when strictly smaller. Panics on empty slices.
func MinBy[E ~[]T, T any](l E, lt func(a, b T) bool) T {
	min := l[0]
	for _, x := range l[1:] {
		if lt(x, min) {
			min = x
		}
	}
	return min
}
