package selfcheck

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/earlgray283/segkit/segtree"
)

// model is the naive O(n) array the trees are compared against.
type model []int64

func (m model) clone() []int64 { return append([]int64(nil), m...) }

func (m model) add(l, r int, v int64) {
	for i := l; i <= r; i++ {
		m[i] += v
	}
}

func (m model) set(l, r int, v int64) {
	for i := l; i <= r; i++ {
		m[i] = v
	}
}

func (m model) sum(l, r int) int64 { return lo.Sum(m[l : r+1]) }

func (m model) min(l, r int) segtree.MinResult[int64] {
	v := lo.Min(m[l : r+1])
	return segtree.MinResult[int64]{Value: v, Index: l + lo.IndexOf(m[l:r+1], v)}
}

func randomValues(rng *rand.Rand, n int) []int64 {
	return lo.Times(n, func(int) int64 { return rng.Int63n(41) - 20 })
}

func randomRange(rng *rand.Rand, n int) (int, int) {
	l, r := rng.Intn(n), rng.Intn(n)
	if l > r {
		l, r = r, l
	}
	return l, r
}
