package segtree

import "errors"

var (
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidSize   = errors.New("invalid size")
	ErrUninitialized = errors.New("tree is not initialized")
)
