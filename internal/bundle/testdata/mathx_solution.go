package main

import (
	"fmt"

	mx "example.com/mathx"
)

func main() {
	p := mx.Pair{A: 1, B: 2}
	d, err := mx.Double(p.Sum())
	if err != nil {
		panic(err)
	}
	fmt.Println(d, mx.Shout("ok"), mx.Base)
}
