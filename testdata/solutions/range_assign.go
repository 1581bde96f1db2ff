// Range add, range assign, range sum.
//
//	n q
//	0 l r x   add x to a[l..r]
//	1 l r x   set a[l..r] to x
//	2 l r     print a[l] + ... + a[r]
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
	var st segtree.AddSetSumST[int64]
	st.Assign(n)
	for ; q > 0; q-- {
		var t, l, r int
		fmt.Fscan(in, &t, &l, &r)
		switch t {
		case 0, 1:
			var x int64
			fmt.Fscan(in, &x)
			if t == 0 {
				st.Add(l, r, x)
			} else {
				st.Set(l, r, x)
			}
		default:
			sum, _ := st.Sum(l, r)
			fmt.Fprintln(out, sum)
		}
	}
}
