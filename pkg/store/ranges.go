package store

import "cmp"

// Range is an inclusive [Min, Max] value-range policy. It carries no state;
// repair semantics (reset-if-outside on read, clip on write) live with the
// accessors that consult it.
type Range[T cmp.Ordered] struct {
	Min, Max T
}

// Contains reports whether v lies within the range.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Clip saturates v to the nearest bound.
func (r Range[T]) Clip(v T) T {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}
