package segtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// concatOp folds leaves into a string, which makes merge order visible.
type concatOp struct {
	letters string
}

func (op concatOp) Init(n *string, leaf int) { *n = string(op.letters[leaf]) }

func (concatOp) Recalc(t *Tree[string], p Pos) {
	*t.Node(p.I) = *t.Node(p.Left().I) + *t.Node(p.Right().I)
}

func (concatOp) Push(*Tree[string], Pos)         {}
func (concatOp) Zero() string                    { return "" }
func (concatOp) Get(n *string) string            { return *n }
func (concatOp) Merge(left, right string) string { return left + right }

func TestBuildAndCalc_MergeOrder(t *testing.T) {
	const letters = "abcdefg"
	var tr Tree[string]
	require.NoError(t, tr.Assign(len(letters)))
	op := concatOp{letters: letters}
	Build(&tr, op)

	assert.Equal(t, letters, *tr.Node(1))
	for l := 0; l < len(letters); l++ {
		for r := l; r < len(letters); r++ {
			got := Calc[string, string](&tr, op, Query{L: l, R: r})
			assert.Equal(t, letters[l:r+1], got, "range [%d,%d]", l, r)
		}
	}
}

func TestBuild_EmptyTree(t *testing.T) {
	var tr Tree[string]
	require.NoError(t, tr.Assign(0))
	Build(&tr, concatOp{})
	assert.Equal(t, "", *tr.Node(1))
}

// recordOp is an add/sum policy that logs every position it touches.
type recordOp struct {
	pushes  *[]Pos
	applies *[]Pos
	val     int
}

func (op recordOp) Push(t *Tree[addSumNode[int]], p Pos) {
	*op.pushes = append(*op.pushes, p)
	addSumPush[int]{}.Push(t, p)
}

func (op recordOp) Apply(t *Tree[addSumNode[int]], p Pos) {
	*op.applies = append(*op.applies, p)
	t.Node(p.I).add += op.val
}

func (recordOp) Recalc(t *Tree[addSumNode[int]], p Pos) { addSumRecalc[int]{}.Recalc(t, p) }
func (recordOp) Zero() int                              { return 0 }
func (recordOp) Get(n *addSumNode[int]) int             { return n.sum }
func (recordOp) Merge(left, right int) int              { return left + right }

func TestSingleElement_DoesNotDescendBelowLeaf(t *testing.T) {
	const size, k = 8, 5
	var tr Tree[addSumNode[int]]
	require.NoError(t, tr.Assign(size))

	var pushes, applies []Pos
	op := recordOp{pushes: &pushes, applies: &applies, val: 3}

	Modify(&tr, op, Query{L: k, R: k})
	require.Len(t, applies, 1)
	leaf := applies[0]
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, k, leaf.Leaf())
	for _, p := range pushes {
		assert.Less(t, p.I, 2*leaf.I, "push below the leaf: %+v", p)
	}

	pushes = pushes[:0]
	got := Calc[addSumNode[int], int](&tr, op, Query{L: k, R: k})
	assert.Equal(t, 3, got)
	require.NotEmpty(t, pushes)
	assert.Equal(t, leaf, pushes[len(pushes)-1], "calc must stop at the leaf")
	for _, p := range pushes {
		assert.True(t, p.L <= k && k <= p.R, "calc pushed off-path node %+v", p)
	}
}

func TestPushChildren_LeafIsNoop(t *testing.T) {
	var tr Tree[addSumNode[int]]
	require.NoError(t, tr.Assign(2))

	var pushes, applies []Pos
	op := recordOp{pushes: &pushes, applies: &applies, val: 1}

	PushChildren(&tr, Pos{I: 2, L: 0, R: 0}, op)
	assert.Empty(t, applies)

	PushChildren(&tr, tr.Root(), op)
	assert.Equal(t, []Pos{{I: 2, L: 0, R: 0}, {I: 3, L: 1, R: 1}}, applies)
}

// A sibling outside the update range may hold a forwarded tag; the parent
// must not be recomputed from its stale aggregate.
func TestModify_RecalcSeesForwardedTags(t *testing.T) {
	st := NewAddSumST([]int{1, 2, 3, 4})
	require.NoError(t, st.Add(0, 3, 10))
	require.NoError(t, st.Add(0, 1, 1))

	sum, err := st.Sum(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 52, sum)
	assert.Equal(t, []int{12, 13, 13, 14}, st.Values())
}
