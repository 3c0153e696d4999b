package mathutil

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

func Limit[T constraints.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

func LimitFloat32(v float32, min, max float32) float32 {
	return math32.Max(min, math32.Min(v, max))
}

//----------

func Max[T constraints.Ordered](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if m < v {
			m = v
		}
	}
	return m
}
