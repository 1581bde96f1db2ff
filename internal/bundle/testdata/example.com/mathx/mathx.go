package mathx

import (
	"errors"
	"strings"

	"example.com/mathx/twice"
)

const Base = 10

var ErrNegative = errors.New("negative input")

type Pair struct {
	A, B int
}

func (p Pair) Sum() int { return p.A + p.B }

func Double(x int) (int, error) {
	if x < 0 {
		return 0, ErrNegative
	}
	return twice.Of(x), nil
}

func Shout(s string) string { return strings.ToUpper(s) + "!" }
