package main

import (
	"fmt"

	"example.com/mathx"
)

func Shout(s string) string { return s }

func main() {
	fmt.Println(Shout("x"), mathx.Base)
}
