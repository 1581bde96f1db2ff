package segtree

import "golang.org/x/exp/constraints"

// Number is the set of element types the built-in structures accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// maxValue returns the largest value representable by T (+Inf for floats).
// For integers doubling stops at the highest power of two, where the next
// step wraps. For floats it runs on to +Inf, which is returned.
func maxValue[T Number]() T {
	x := T(1)
	for x*2 > x {
		x *= 2
	}
	return x + (x - 1)
}

// leafSource yields the initial value of leaf i.
type leafSource[T any] func(i int) T

func sliceSource[T any](vals []T) leafSource[T] {
	return func(i int) T { return vals[i] }
}

func constSource[T any](val T) leafSource[T] {
	return func(int) T { return val }
}
