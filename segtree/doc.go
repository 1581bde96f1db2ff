// Package segtree implements a generic lazy segment tree engine and three
// ready-made range structures built on it:
//
//   - AddSumST: range add, range sum.
//   - AddSetSumST: range add and range assign, range sum.
//   - AddMinST: range add, range minimum with the lowest index achieving it.
//
// The engine (Build, Calc, Modify) walks an implicit 1-indexed heap layout
// stored in a Tree and delegates every node-level decision to an operation
// policy. New structures are written by declaring a node type and a few small
// policy structs; see addsum.go for the smallest example.
//
// All ranges are inclusive: [l, r] with 0 <= l <= r < Len().
//
// Trees are not safe for concurrent use. Queries push pending tags down and
// therefore mutate the tree, so even concurrent reads need an exclusive lock.
package segtree
