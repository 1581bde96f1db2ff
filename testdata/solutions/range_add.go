// Range add, range sum.
//
//	n q
//	a_0 ... a_{n-1}
//	0 l r x   add x to a[l..r]
//	1 l r     print a[l] + ... + a[r]
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/earlgray283/segkit/segtree"
)

func main() {
	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var n, q int
	fmt.Fscan(in, &n, &q)
	a := make([]int64, n)
	for i := range a {
		fmt.Fscan(in, &a[i])
	}
	st := segtree.NewAddSumST(a)
	for ; q > 0; q-- {
		var t, l, r int
		fmt.Fscan(in, &t, &l, &r)
		if t == 0 {
			var x int64
			fmt.Fscan(in, &x)
			st.Add(l, r, x)
			continue
		}
		sum, _ := st.Sum(l, r)
		fmt.Fprintln(out, sum)
	}
}
