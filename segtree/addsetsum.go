package segtree

// addSetSumNode holds at most one pending tag: hasSet wins over add, and
// applying either tag keeps it that way.
type addSetSumNode[T Number] struct {
	sum    T
	add    T
	set    T
	hasSet bool
}

type addSetSumPush[T Number] struct{}

func (addSetSumPush[T]) Push(t *Tree[addSetSumNode[T]], p Pos) {
	n := t.Node(p.I)
	switch {
	case n.hasSet:
		PushChildren(t, p, addSetSumSet[T]{val: n.set})
		n.sum = n.set * T(p.Len())
		n.set, n.hasSet = 0, false
	case n.add != 0:
		PushChildren(t, p, addSetSumAdd[T]{val: n.add})
		n.sum += n.add * T(p.Len())
		n.add = 0
	}
}

type addSetSumRecalc[T Number] struct{}

func (addSetSumRecalc[T]) Recalc(t *Tree[addSetSumNode[T]], p Pos) {
	t.Node(p.I).sum = t.Node(p.Left().I).sum + t.Node(p.Right().I).sum
}

type addSetSumInit[T Number] struct {
	addSetSumRecalc[T]
	src leafSource[T]
}

func (op addSetSumInit[T]) Init(n *addSetSumNode[T], leaf int) {
	n.sum = op.src(leaf)
}

type addSetSumAdd[T Number] struct {
	addSetSumPush[T]
	addSetSumRecalc[T]
	val T
}

func (op addSetSumAdd[T]) Apply(t *Tree[addSetSumNode[T]], p Pos) {
	n := t.Node(p.I)
	if n.hasSet {
		n.set += op.val
		return
	}
	n.add += op.val
}

type addSetSumSet[T Number] struct {
	addSetSumPush[T]
	addSetSumRecalc[T]
	val T
}

func (op addSetSumSet[T]) Apply(t *Tree[addSetSumNode[T]], p Pos) {
	n := t.Node(p.I)
	n.add = 0
	n.set, n.hasSet = op.val, true
}

type addSetSumQuery[T Number] struct {
	addSetSumPush[T]
}

func (addSetSumQuery[T]) Zero() T                   { return 0 }
func (addSetSumQuery[T]) Get(n *addSetSumNode[T]) T { return n.sum }
func (addSetSumQuery[T]) Merge(left, right T) T     { return left + right }

// AddSetSumST supports range add, range assign and range sum in O(log n).
// An assignment discards every earlier add on the elements it covers.
type AddSetSumST[T Number] struct {
	tree Tree[addSetSumNode[T]]
}

// NewAddSetSumST returns a tree holding a copy of vals.
func NewAddSetSumST[T Number](vals []T) *AddSetSumST[T] {
	st := &AddSetSumST[T]{}
	st.AssignSlice(vals)
	return st
}

// Assign resets the tree to size zeros.
func (st *AddSetSumST[T]) Assign(size int) error {
	return st.assign(size, nil)
}

// AssignConst resets the tree to size copies of val.
func (st *AddSetSumST[T]) AssignConst(size int, val T) error {
	return st.assign(size, constSource(val))
}

// AssignSlice resets the tree to the values of vals.
func (st *AddSetSumST[T]) AssignSlice(vals []T) {
	_ = st.assign(len(vals), sliceSource(vals))
}

func (st *AddSetSumST[T]) assign(size int, src leafSource[T]) error {
	if err := st.tree.Assign(size); err != nil {
		return err
	}
	if src != nil {
		Build(&st.tree, addSetSumInit[T]{src: src})
	}
	return nil
}

func (st *AddSetSumST[T]) Len() int { return st.tree.Len() }

// Sum returns the sum of the elements in [l, r].
func (st *AddSetSumST[T]) Sum(l, r int) (T, error) {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return 0, err
	}
	return Calc[addSetSumNode[T], T](&st.tree, addSetSumQuery[T]{}, q), nil
}

// Add adds val to every element in [l, r].
func (st *AddSetSumST[T]) Add(l, r int, val T) error {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return err
	}
	Modify(&st.tree, addSetSumAdd[T]{val: val}, q)
	return nil
}

// Set assigns val to every element in [l, r].
func (st *AddSetSumST[T]) Set(l, r int, val T) error {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return err
	}
	Modify(&st.tree, addSetSumSet[T]{val: val}, q)
	return nil
}

// Get returns the element at index i.
func (st *AddSetSumST[T]) Get(i int) (T, error) {
	return st.Sum(i, i)
}

// Values returns a snapshot of every element.
func (st *AddSetSumST[T]) Values() []T {
	return snapshot(st.tree.Len(), st.Get)
}
