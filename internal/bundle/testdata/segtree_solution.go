package main

import (
	"fmt"

	"github.com/earlgray283/segkit/segtree"
)

func main() {
	st := segtree.NewAddSetSumST([]int64{1, 2, 3})
	if err := st.Set(0, 0, 50); err != nil {
		panic(err)
	}
	sum, _ := st.Sum(0, 2)

	mins := segtree.NewAddMinST([]int{5, 3, 3, 9})
	var m segtree.MinResult[int]
	m, _ = mins.Min(0, 3)
	fmt.Println(sum, m.Value, m.Index)
}
