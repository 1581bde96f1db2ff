package segtree

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSumST_AssignSliceRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 8, 13, 100} {
		vals := lo.Range(size)
		st := NewAddSumST(vals)

		sum, err := st.Sum(0, size-1)
		require.NoError(t, err, "size=%d", size)
		assert.Equal(t, lo.Sum(vals), sum, "size=%d", size)
		assert.Equal(t, vals, st.Values())
	}
}

func TestAddSumST_Assign(t *testing.T) {
	var st AddSumST[int64]

	require.NoError(t, st.Assign(4))
	assert.Equal(t, []int64{0, 0, 0, 0}, st.Values())

	require.NoError(t, st.AssignConst(3, 7))
	sum, err := st.Sum(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(21), sum)

	assert.ErrorIs(t, st.Assign(-2), ErrInvalidSize)
}

func TestAddSumST_AddAndSum(t *testing.T) {
	st := NewAddSumST([]int{3, 1, 4, 1, 5, 9, 2, 6})

	require.NoError(t, st.Add(2, 5, 10))
	require.NoError(t, st.Add(0, 0, -3))
	require.NoError(t, st.Add(5, 7, 1))

	assert.Equal(t, []int{0, 1, 14, 11, 15, 20, 3, 7}, st.Values())

	tests := []struct {
		l, r int
		want int
	}{
		{0, 7, 71},
		{2, 5, 60},
		{5, 5, 20},
		{6, 7, 10},
	}
	for _, tt := range tests {
		got, err := st.Sum(tt.l, tt.r)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "range [%d,%d]", tt.l, tt.r)
	}
}

func TestAddSumST_DisjointAddsCommute(t *testing.T) {
	a := NewAddSumST(make([]int, 9))
	b := NewAddSumST(make([]int, 9))

	require.NoError(t, a.Add(0, 3, 5))
	require.NoError(t, a.Add(4, 8, -2))
	require.NoError(t, b.Add(4, 8, -2))
	require.NoError(t, b.Add(0, 3, 5))

	assert.Equal(t, a.Values(), b.Values())
}

func TestAddSumST_Floats(t *testing.T) {
	st := NewAddSumST([]float64{0.5, 1.5, 2})
	require.NoError(t, st.Add(0, 2, 0.25))

	sum, err := st.Sum(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.75, sum, 1e-9)
}

func TestAddSumST_Errors(t *testing.T) {
	var st AddSumST[int]
	_, err := st.Sum(0, 0)
	assert.ErrorIs(t, err, ErrUninitialized)
	assert.ErrorIs(t, st.Add(0, 0, 1), ErrUninitialized)

	st.AssignSlice([]int{1, 2, 3})
	_, err = st.Sum(2, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.ErrorIs(t, st.Add(0, 3, 1), ErrInvalidRange)
	_, err = st.Get(-1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	assert.Equal(t, []int{1, 2, 3}, st.Values(), "failed calls must not modify the tree")
}
