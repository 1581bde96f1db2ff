package selfcheck

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/earlgray283/segkit/segtree"
)

// Options tune the randomized checks.
type Options struct {
	Seed   int64
	Rounds int
	Size   int
}

// Default returns the scenario checks followed by one randomized
// differential check per structure.
func Default(opts Options) []Check {
	return []Check{
		{Name: "addsetsum/scenario", Run: scenarioAddSetSum},
		{Name: "addmin/lowest-index", Run: scenarioAddMin},
		{Name: "addsetsum/set-idempotent", Run: setIdempotent},
		{Name: "addsum/round-trip", Run: func(context.Context) error { return roundTrip(opts) }},
		{Name: "addsum/differential", Run: func(ctx context.Context) error { return diffAddSum(ctx, opts) }},
		{Name: "addsetsum/differential", Run: func(ctx context.Context) error { return diffAddSetSum(ctx, opts) }},
		{Name: "addmin/differential", Run: func(ctx context.Context) error { return diffAddMin(ctx, opts) }},
	}
}

func scenarioAddSetSum(context.Context) error {
	st := segtree.NewAddSetSumST([]int{1, 2, 3})
	if err := st.Add(1, 1, 100); err != nil {
		return err
	}
	sum, err := st.Sum(0, 2)
	if err != nil {
		return err
	}
	if err := expectEqual("sum after add", 106, sum); err != nil {
		return err
	}

	if err := st.Set(0, 0, 50); err != nil {
		return err
	}
	sum, err = st.Sum(0, 2)
	if err != nil {
		return err
	}
	return expectEqual("sum after set", 155, sum)
}

func scenarioAddMin(context.Context) error {
	st := segtree.NewAddMinST([]int{5, 3, 3, 9})
	got, err := st.Min(0, 3)
	if err != nil {
		return err
	}
	return expectEqual("min", segtree.MinResult[int]{Value: 3, Index: 1}, got)
}

func setIdempotent(context.Context) error {
	once := segtree.NewAddSetSumST([]int{4, 8, 15, 16, 23, 42})
	twice := segtree.NewAddSetSumST([]int{4, 8, 15, 16, 23, 42})
	for _, st := range []*segtree.AddSetSumST[int]{once, twice, twice} {
		if err := st.Set(1, 4, 7); err != nil {
			return err
		}
	}
	return expectEqual("values", fmt.Sprint(once.Values()), fmt.Sprint(twice.Values()))
}

func roundTrip(opts Options) error {
	vals := randomValues(rand.New(rand.NewSource(opts.Seed)), opts.Size)
	st := segtree.NewAddSumST(vals)
	sum, err := st.Sum(0, len(vals)-1)
	if err != nil {
		return err
	}
	return expectEqual("total", lo.Sum(vals), sum)
}

func diffAddSum(ctx context.Context, opts Options) error {
	rng := rand.New(rand.NewSource(opts.Seed))
	ref := model(randomValues(rng, opts.Size))
	st := segtree.NewAddSumST(ref.clone())

	for round := 0; round < opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, r := randomRange(rng, opts.Size)
		if rng.Intn(2) == 0 {
			v := rng.Int63n(21) - 10
			ref.add(l, r, v)
			if err := st.Add(l, r, v); err != nil {
				return err
			}
			continue
		}
		got, err := st.Sum(l, r)
		if err != nil {
			return err
		}
		if err := expectEqual(fmt.Sprintf("round %d: sum[%d,%d]", round, l, r), ref.sum(l, r), got); err != nil {
			return err
		}
	}
	return nil
}

func diffAddSetSum(ctx context.Context, opts Options) error {
	rng := rand.New(rand.NewSource(opts.Seed + 1))
	ref := model(randomValues(rng, opts.Size))
	st := segtree.NewAddSetSumST(ref.clone())

	for round := 0; round < opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, r := randomRange(rng, opts.Size)
		v := rng.Int63n(21) - 10
		switch rng.Intn(3) {
		case 0:
			ref.add(l, r, v)
			if err := st.Add(l, r, v); err != nil {
				return err
			}
		case 1:
			ref.set(l, r, v)
			if err := st.Set(l, r, v); err != nil {
				return err
			}
		default:
			got, err := st.Sum(l, r)
			if err != nil {
				return err
			}
			if err := expectEqual(fmt.Sprintf("round %d: sum[%d,%d]", round, l, r), ref.sum(l, r), got); err != nil {
				return err
			}
		}
	}
	return expectEqual("final values", fmt.Sprint([]int64(ref)), fmt.Sprint(st.Values()))
}

func diffAddMin(ctx context.Context, opts Options) error {
	rng := rand.New(rand.NewSource(opts.Seed + 2))
	ref := model(randomValues(rng, opts.Size))
	st := segtree.NewAddMinST(ref.clone())

	for round := 0; round < opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, r := randomRange(rng, opts.Size)
		if rng.Intn(2) == 0 {
			v := rng.Int63n(7) - 3
			ref.add(l, r, v)
			if err := st.Add(l, r, v); err != nil {
				return err
			}
			continue
		}
		got, err := st.Min(l, r)
		if err != nil {
			return err
		}
		if err := expectEqual(fmt.Sprintf("round %d: min[%d,%d]", round, l, r), ref.min(l, r), got); err != nil {
			return err
		}
	}
	return nil
}
