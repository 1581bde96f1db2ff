package segtree

// Pusher materializes the pending tag of the node at p and forwards it to
// the node's children.
type Pusher[N any] interface {
	Push(t *Tree[N], p Pos)
}

// Applier sets or merges a pending tag on the node at p.
type Applier[N any] interface {
	Apply(t *Tree[N], p Pos)
}

// Builder seeds leaves and recombines children into their parent.
type Builder[N any] interface {
	Init(node *N, leaf int)
	Recalc(t *Tree[N], p Pos)
}

// Calculator folds a range into a result of type R. Merge must be
// associative; it is always called with the left part first.
type Calculator[N, R any] interface {
	Pusher[N]
	Zero() R
	Get(node *N) R
	Merge(left, right R) R
}

// Modifier performs a range update.
type Modifier[N any] interface {
	Pusher[N]
	Applier[N]
	Recalc(t *Tree[N], p Pos)
}

// Build initializes every leaf with op.Init and every internal node with
// op.Recalc, children first.
func Build[N any, O Builder[N]](t *Tree[N], op O) {
	if t.size == 0 {
		return
	}
	build(t, op, t.Root())
}

func build[N any, O Builder[N]](t *Tree[N], op O, p Pos) {
	if p.IsLeaf() {
		op.Init(t.Node(p.I), p.Leaf())
		return
	}
	build(t, op, p.Left())
	build(t, op, p.Right())
	op.Recalc(t, p)
}

// Calc folds the range q. The caller is responsible for q being a valid
// range of t (see Tree.Check).
func Calc[N, R any, O Calculator[N, R]](t *Tree[N], op O, q Query) R {
	return calc[N, R, O](t, op, t.Root(), q)
}

func calc[N, R any, O Calculator[N, R]](t *Tree[N], op O, p Pos, q Query) R {
	if !q.Overlaps(p) {
		return op.Zero()
	}
	op.Push(t, p)
	if q.Covers(p) {
		return op.Get(t.Node(p.I))
	}
	left := calc[N, R, O](t, op, p.Left(), q)
	right := calc[N, R, O](t, op, p.Right(), q)
	return op.Merge(left, right)
}

// Modify applies op to the range q. A node fully covered by q only receives
// a tag; its subtree is updated lazily by later pushes.
func Modify[N any, O Modifier[N]](t *Tree[N], op O, q Query) {
	modify(t, op, t.Root(), q)
}

func modify[N any, O Modifier[N]](t *Tree[N], op O, p Pos, q Query) {
	if !q.Overlaps(p) {
		return
	}
	if q.Covers(p) {
		op.Apply(t, p)
		op.Push(t, p)
		return
	}

	op.Push(t, p)
	left, right := p.Left(), p.Right()
	modify(t, op, left, q)
	modify(t, op, right, q)
	// A child outside q may still hold a tag forwarded by the push above;
	// Recalc must only read materialized aggregates.
	op.Push(t, left)
	op.Push(t, right)
	op.Recalc(t, p)
}

// PushChildren forwards a tag to both children of p by applying op to them.
// It is a no-op on a leaf.
func PushChildren[N any, O Applier[N]](t *Tree[N], p Pos, op O) {
	if p.IsLeaf() {
		return
	}
	op.Apply(t, p.Left())
	op.Apply(t, p.Right())
}
