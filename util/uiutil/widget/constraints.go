package widget

import (
	"fmt"
	"strings"
)

// Size request exported by a node to its parent.
type Constraints struct {
	SizeX  int
	SizeY  int
	Aspect float32
	Weight float32
	Flags  ConstraintFlags
}

func FixedWidth(w int) Constraints {
	return Constraints{SizeX: w, Flags: ConstraintX}
}
func FixedHeight(h int) Constraints {
	return Constraints{SizeY: h, Flags: ConstraintY}
}
func FixedSize(w, h int) Constraints {
	return Constraints{SizeX: w, SizeY: h, Flags: ConstraintX | ConstraintY}
}
func AspectRatio(a float32) Constraints {
	return Constraints{Aspect: a, Flags: ConstraintA}
}
func FlexWeight(w float32) Constraints {
	return Constraints{Weight: w, Flags: ConstraintW}
}

// Flags that take part in layout classification.
func (c Constraints) Filter() ConstraintFlags {
	return c.Flags & ConstraintAll
}

func (c Constraints) String() string {
	return fmt.Sprintf("{%v x=%d y=%d a=%g w=%g}", c.Flags, c.SizeX, c.SizeY, c.Aspect, c.Weight)
}

//----------

type ConstraintFlags uint8

func (f ConstraintFlags) HasAny(u ConstraintFlags) bool { return f&u != 0 }

const (
	ConstraintX ConstraintFlags = 1 << iota // fixed width
	ConstraintY                             // fixed height
	ConstraintA                             // aspect locked
	ConstraintW                             // explicit weight

	ConstraintAll = ConstraintX | ConstraintY | ConstraintA | ConstraintW
)

func (f ConstraintFlags) String() string {
	names := []string{"X", "Y", "A", "W"}
	u := []string{}
	for i, n := range names {
		if f.HasAny(1 << uint(i)) {
			u = append(u, n)
		}
	}
	if len(u) == 0 {
		return "-"
	}
	return strings.Join(u, "|")
}
