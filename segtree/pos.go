package segtree

// Pos addresses a node of the heap layout: I is the node index and [L, R]
// the leaves it spans.
type Pos struct {
	I    int
	L, R int
}

func (p Pos) IsLeaf() bool { return p.L == p.R }

// Leaf is the array index of a leaf node.
func (p Pos) Leaf() int { return p.L }

func (p Pos) Mid() int { return (p.L + p.R) >> 1 }
func (p Pos) Len() int { return p.R - p.L + 1 }

func (p Pos) Left() Pos  { return Pos{I: p.I << 1, L: p.L, R: p.Mid()} }
func (p Pos) Right() Pos { return Pos{I: p.I<<1 | 1, L: p.Mid() + 1, R: p.R} }

// Query is an inclusive index range [L, R].
type Query struct {
	L, R int
}

// Overlaps reports whether q and the node at p share at least one index.
func (q Query) Overlaps(p Pos) bool {
	return !(q.R < p.L || q.L > p.R)
}

// Covers reports whether every index of the node at p lies inside q.
func (q Query) Covers(p Pos) bool {
	return q.L <= p.L && p.R <= q.R
}
