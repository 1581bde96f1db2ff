package segtree

import (
	"fmt"
	"math/bits"
)

// Tree is the node arena shared by every structure in this package. Nodes
// live in a 1-indexed heap layout: the root is at 1 and the children of i at
// 2i and 2i+1.
type Tree[N any] struct {
	nodes []N
	size  int
}

// Assign drops every node and resets the tree to size zero-valued leaves.
func (t *Tree[N]) Assign(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	t.size = size
	t.nodes = make([]N, 2*nextPowerOf2(size))
	return nil
}

// Len returns the number of logical leaves.
func (t *Tree[N]) Len() int { return t.size }

// Initialized reports whether Assign has been called.
func (t *Tree[N]) Initialized() bool { return t.nodes != nil }

// Node returns the node stored at heap index i.
func (t *Tree[N]) Node(i int) *N { return &t.nodes[i] }

// Root returns the position of the root, spanning [0, Len()-1].
func (t *Tree[N]) Root() Pos { return Pos{I: 1, L: 0, R: t.size - 1} }

// Check validates [l, r] against the tree and returns it as a Query.
func (t *Tree[N]) Check(l, r int) (Query, error) {
	if !t.Initialized() {
		return Query{}, ErrUninitialized
	}
	if l < 0 || l >= t.size {
		return Query{}, fmt.Errorf("%w: left index %d out of bounds [0,%d)", ErrInvalidRange, l, t.size)
	}
	if r < 0 || r >= t.size {
		return Query{}, fmt.Errorf("%w: right index %d out of bounds [0,%d)", ErrInvalidRange, r, t.size)
	}
	if l > r {
		return Query{}, fmt.Errorf("%w: left %d > right %d", ErrInvalidRange, l, r)
	}
	return Query{L: l, R: r}, nil
}

// nextPowerOf2 returns the smallest power of 2 that is >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// snapshot reads n elements one by one through get.
func snapshot[T any](n int, get func(int) (T, error)) []T {
	vals := make([]T, n)
	for i := range vals {
		vals[i], _ = get(i)
	}
	return vals
}
