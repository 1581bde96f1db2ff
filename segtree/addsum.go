package segtree

type addSumNode[T Number] struct {
	sum T
	add T
}

type addSumPush[T Number] struct{}

func (addSumPush[T]) Push(t *Tree[addSumNode[T]], p Pos) {
	n := t.Node(p.I)
	if n.add == 0 {
		return
	}
	PushChildren(t, p, addSumAdd[T]{val: n.add})
	n.sum += n.add * T(p.Len())
	n.add = 0
}

type addSumRecalc[T Number] struct{}

func (addSumRecalc[T]) Recalc(t *Tree[addSumNode[T]], p Pos) {
	t.Node(p.I).sum = t.Node(p.Left().I).sum + t.Node(p.Right().I).sum
}

type addSumInit[T Number] struct {
	addSumRecalc[T]
	src leafSource[T]
}

func (op addSumInit[T]) Init(n *addSumNode[T], leaf int) {
	n.sum = op.src(leaf)
}

type addSumAdd[T Number] struct {
	addSumPush[T]
	addSumRecalc[T]
	val T
}

func (op addSumAdd[T]) Apply(t *Tree[addSumNode[T]], p Pos) {
	t.Node(p.I).add += op.val
}

type addSumQuery[T Number] struct {
	addSumPush[T]
}

func (addSumQuery[T]) Zero() T                { return 0 }
func (addSumQuery[T]) Get(n *addSumNode[T]) T { return n.sum }
func (addSumQuery[T]) Merge(left, right T) T  { return left + right }

// AddSumST supports adding a value to every element of a range and summing
// a range, both in O(log n).
//
// The zero value is an uninitialized tree; call one of the Assign methods
// or use NewAddSumST before querying.
type AddSumST[T Number] struct {
	tree Tree[addSumNode[T]]
}

// NewAddSumST returns a tree holding a copy of vals.
func NewAddSumST[T Number](vals []T) *AddSumST[T] {
	st := &AddSumST[T]{}
	st.AssignSlice(vals)
	return st
}

// Assign resets the tree to size zeros.
func (st *AddSumST[T]) Assign(size int) error {
	return st.assign(size, nil)
}

// AssignConst resets the tree to size copies of val.
func (st *AddSumST[T]) AssignConst(size int, val T) error {
	return st.assign(size, constSource(val))
}

// AssignSlice resets the tree to the values of vals.
func (st *AddSumST[T]) AssignSlice(vals []T) {
	_ = st.assign(len(vals), sliceSource(vals))
}

func (st *AddSumST[T]) assign(size int, src leafSource[T]) error {
	if err := st.tree.Assign(size); err != nil {
		return err
	}
	if src != nil {
		Build(&st.tree, addSumInit[T]{src: src})
	}
	return nil
}

func (st *AddSumST[T]) Len() int { return st.tree.Len() }

// Sum returns the sum of the elements in [l, r].
func (st *AddSumST[T]) Sum(l, r int) (T, error) {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return 0, err
	}
	return Calc[addSumNode[T], T](&st.tree, addSumQuery[T]{}, q), nil
}

// Add adds val to every element in [l, r].
func (st *AddSumST[T]) Add(l, r int, val T) error {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return err
	}
	Modify(&st.tree, addSumAdd[T]{val: val}, q)
	return nil
}

// Get returns the element at index i.
func (st *AddSumST[T]) Get(i int) (T, error) {
	return st.Sum(i, i)
}

// Values returns a snapshot of every element.
func (st *AddSumST[T]) Values() []T {
	return snapshot(st.tree.Len(), st.Get)
}
