package segtree

// MinResult is a minimum together with the lowest index holding it. The
// identity of Min has Index -1.
type MinResult[T Number] struct {
	Value T
	Index int
}

// Less orders results by value, then by index.
func (m MinResult[T]) Less(o MinResult[T]) bool {
	if m.Value != o.Value {
		return m.Value < o.Value
	}
	return m.Index < o.Index
}

func minResult[T Number](a, b MinResult[T]) MinResult[T] {
	switch {
	case a.Index < 0:
		return b
	case b.Index < 0:
		return a
	case b.Less(a):
		return b
	}
	return a
}

type addMinNode[T Number] struct {
	min MinResult[T]
	add T
}

type addMinPush[T Number] struct{}

func (addMinPush[T]) Push(t *Tree[addMinNode[T]], p Pos) {
	n := t.Node(p.I)
	if n.add == 0 {
		return
	}
	PushChildren(t, p, addMinAdd[T]{val: n.add})
	n.min.Value += n.add
	n.add = 0
}

type addMinRecalc[T Number] struct{}

func (addMinRecalc[T]) Recalc(t *Tree[addMinNode[T]], p Pos) {
	t.Node(p.I).min = minResult(t.Node(p.Left().I).min, t.Node(p.Right().I).min)
}

type addMinInit[T Number] struct {
	addMinRecalc[T]
	src leafSource[T]
}

func (op addMinInit[T]) Init(n *addMinNode[T], leaf int) {
	n.min = MinResult[T]{Value: op.src(leaf), Index: leaf}
	n.add = 0
}

type addMinAdd[T Number] struct {
	addMinPush[T]
	addMinRecalc[T]
	val T
}

func (op addMinAdd[T]) Apply(t *Tree[addMinNode[T]], p Pos) {
	t.Node(p.I).add += op.val
}

type addMinQuery[T Number] struct {
	addMinPush[T]
	inf T
}

func (op addMinQuery[T]) Zero() MinResult[T] {
	return MinResult[T]{Value: op.inf, Index: -1}
}

func (addMinQuery[T]) Get(n *addMinNode[T]) MinResult[T] { return n.min }

func (addMinQuery[T]) Merge(left, right MinResult[T]) MinResult[T] {
	return minResult(left, right)
}

// AddMinST supports range add and range minimum in O(log n). Min reports
// the lowest index among equal minima.
type AddMinST[T Number] struct {
	tree Tree[addMinNode[T]]
	inf  T
}

// NewAddMinST returns a tree holding a copy of vals.
func NewAddMinST[T Number](vals []T) *AddMinST[T] {
	st := &AddMinST[T]{}
	st.AssignSlice(vals)
	return st
}

// Assign resets the tree to size zeros.
func (st *AddMinST[T]) Assign(size int) error {
	return st.assign(size, constSource(T(0)))
}

// AssignConst resets the tree to size copies of val.
func (st *AddMinST[T]) AssignConst(size int, val T) error {
	return st.assign(size, constSource(val))
}

// AssignSlice resets the tree to the values of vals.
func (st *AddMinST[T]) AssignSlice(vals []T) {
	_ = st.assign(len(vals), sliceSource(vals))
}

func (st *AddMinST[T]) assign(size int, src leafSource[T]) error {
	if err := st.tree.Assign(size); err != nil {
		return err
	}
	st.inf = maxValue[T]()
	Build(&st.tree, addMinInit[T]{src: src})
	return nil
}

func (st *AddMinST[T]) Len() int { return st.tree.Len() }

// Min returns the minimum of [l, r] and the lowest index holding it.
func (st *AddMinST[T]) Min(l, r int) (MinResult[T], error) {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return MinResult[T]{Value: maxValue[T](), Index: -1}, err
	}
	return Calc[addMinNode[T], MinResult[T]](&st.tree, addMinQuery[T]{inf: st.inf}, q), nil
}

// Add adds val to every element in [l, r].
func (st *AddMinST[T]) Add(l, r int, val T) error {
	q, err := st.tree.Check(l, r)
	if err != nil {
		return err
	}
	Modify(&st.tree, addMinAdd[T]{val: val}, q)
	return nil
}

// Get returns the element at index i.
func (st *AddMinST[T]) Get(i int) (T, error) {
	m, err := st.Min(i, i)
	return m.Value, err
}

// Values returns a snapshot of every element.
func (st *AddMinST[T]) Values() []T {
	return snapshot(st.tree.Len(), st.Get)
}
