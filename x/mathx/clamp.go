// Package mathx holds the small generic numeric helpers the drivers share.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. The bounds must be ordered.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRange reports whether lo <= v <= hi.
func InRange[T constraints.Ordered](v, lo, hi T) bool { return v >= lo && v <= hi }
