package main

import (
	"fmt"

	"example.com/osname"
)

func main() {
	fmt.Println(osname.Name())
}
