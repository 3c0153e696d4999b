package widget

import (
	"github.com/jmigpin/glw/util/mathutil"
)

func distributeX(co *Container, lc *LayoutContext) {
	if layoutSkipped(co, lc) {
		return
	}

	a := &co.agg
	padX := float32(co.Padding.Left + co.Padding.Right)
	available := lc.SizeX - padX

	// aspect childs resolve their width against the current height
	required := padX + float32(a.Fixed) + a.AspectSum*lc.SizeY

	co.SetConstraints(Constraints{
		SizeX: int(required),
		SizeY: a.CrossMax,
		Flags: a.Flags,
	})

	x := -1 + 2*float32(co.Padding.Left)/lc.SizeX

	scale, share := float32(1), float32(0)
	if required > available {
		// requested pixel size > available width, must scale
		scale = available / required
	} else if a.WeightSum != 0 {
		share = (available - required) / a.WeightSum
	} else {
		switch co.Alignment {
		case AlignCenter:
			x = 0 - required/available
		case AlignEnd:
			x = 1 - 2*required/available
		}
	}

	co.dist = Distribution{
		Available: available,
		Required:  required,
		Scale:     scale,
		Share:     share,
		Start:     x,
	}

	co.iterateVisible(nil, func(c *EmbedNode) {
		var xs float32
		f := c.cons.Filter()
		switch {
		case f.HasAny(ConstraintX):
			if scale == 1 {
				xs = float32(c.cons.SizeX)
			} else {
				xs = mathutil.RoundEven(scale * float32(c.cons.SizeX))
			}
		case f.HasAny(ConstraintA):
			xs = mathutil.RoundEven(scale * c.cons.Aspect * lc.SizeY)
		case f.HasAny(ConstraintW):
			xs = mathutil.RoundEven(c.cons.Weight * share)
		default:
			xs = mathutil.RoundEven(share)
		}

		s := xs / available
		c.ParentScale = Vec3{s, 1, s}
		c.NormWeight = s
		c.ParentPos.X = x + s
		x += 2 * s

		c.ParentSize = [2]int{int(xs), int(lc.SizeY)}
		Layout(c.Wrapper, &LayoutContext{SizeX: xs, SizeY: lc.SizeY, Alpha: lc.Alpha})
	})
}

func distributeY(co *Container, lc *LayoutContext) {
	if layoutSkipped(co, lc) {
		return
	}

	a := &co.agg
	padY := float32(co.Padding.Top + co.Padding.Bottom)
	available := lc.SizeY - padY
	required := padY + float32(a.Fixed)

	co.SetConstraints(Constraints{
		SizeX: a.CrossMax,
		SizeY: int(required),
		Flags: a.exportFlagsY(),
	})

	y := 1 - 2*float32(co.Padding.Top)/lc.SizeY

	scale, share := float32(1), float32(0)
	if required > available {
		scale = available / required
	} else if a.WeightSum != 0 {
		share = (available - required) / a.WeightSum
	} else {
		switch co.Alignment {
		case AlignCenter:
			y = required / available
		case AlignEnd:
			y = -1 + 2*required/available
		}
	}

	co.dist = Distribution{
		Available: available,
		Required:  required,
		Scale:     scale,
		Share:     share,
		Start:     y,
	}

	co.iterateVisible(nil, func(c *EmbedNode) {
		var ys float32
		f := c.cons.Filter()
		switch {
		case f.HasAny(ConstraintY):
			if scale == 1 {
				ys = float32(c.cons.SizeY)
			} else {
				ys = mathutil.RoundEven(scale * float32(c.cons.SizeY))
			}
		case f.HasAny(ConstraintW):
			ys = mathutil.RoundEven(c.cons.Weight * share)
		default:
			ys = mathutil.RoundEven(share)
		}

		s := ys / available
		c.ParentScale = Vec3{1, s, s}
		c.NormWeight = s
		c.ParentPos.Y = y - s
		y -= 2 * s

		c.ParentSize = [2]int{int(lc.SizeX), int(ys)}
		Layout(c.Wrapper, &LayoutContext{SizeX: lc.SizeX, SizeY: ys, Alpha: lc.Alpha})
	})
}

// Full overlay: every visible child gets the whole incoming size.
func distributeZ(co *Container, lc *LayoutContext) {
	if layoutSkipped(co, lc) {
		return
	}

	co.dist = Distribution{
		Available: lc.SizeX,
		Required:  lc.SizeX,
		Scale:     1,
		Start:     0,
	}

	co.iterateVisible(nil, func(c *EmbedNode) {
		c.ParentPos = Vec3{}
		c.ParentScale = Vec3{1, 1, 1}
		c.NormWeight = 1
		c.ParentSize = [2]int{int(lc.SizeX), int(lc.SizeY)}
		Layout(c.Wrapper, &LayoutContext{SizeX: lc.SizeX, SizeY: lc.SizeY, Alpha: lc.Alpha})
	})
}

// Opacities are only composed when rendering. Layout is skipped when either the context or the node itself is below the threshold.
func layoutSkipped(co *Container, lc *LayoutContext) bool {
	return lc.Alpha < AlphaThreshold || co.Alpha < AlphaThreshold
}
