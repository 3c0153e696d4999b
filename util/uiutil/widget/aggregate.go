package widget

import (
	"github.com/jmigpin/glw/util/mathutil"
)

// Horizontal: fixed widths are summed, the container exports itself as a fixed block.
func aggregateX(co *Container, skip *EmbedNode) {
	var a Aggregate
	co.iterateVisible(skip, func(c *EmbedNode) {
		f := c.cons.Filter()
		a.Flags |= f & (ConstraintX | ConstraintY)

		a.CrossMax = mathutil.Max(a.CrossMax, c.cons.SizeY)

		switch {
		case f.HasAny(ConstraintX):
			a.Fixed += c.cons.SizeX
		case f.HasAny(ConstraintA):
			a.AspectSum += c.cons.Aspect
		case f.HasAny(ConstraintW):
			a.WeightSum += c.cons.Weight
		default:
			a.WeightSum += 1
		}
	})
	co.agg = a

	co.SetConstraints(Constraints{
		SizeX: a.Fixed,
		SizeY: a.CrossMax,
		Flags: a.Flags,
	})
}

// Vertical: mirror of the horizontal policy, but a weighted container is no longer exported as vertically fixed. Aspect childs count as default weight.
func aggregateY(co *Container, skip *EmbedNode) {
	var a Aggregate
	co.iterateVisible(skip, func(c *EmbedNode) {
		f := c.cons.Filter()
		a.Flags |= f & (ConstraintX | ConstraintY)

		a.CrossMax = mathutil.Max(a.CrossMax, c.cons.SizeX)

		switch {
		case f.HasAny(ConstraintY):
			a.Fixed += c.cons.SizeY
		case f.HasAny(ConstraintW):
			a.WeightSum += c.cons.Weight
		default:
			a.WeightSum += 1
		}
	})
	co.agg = a

	co.SetConstraints(Constraints{
		SizeX: a.CrossMax,
		SizeY: a.Fixed,
		Flags: a.exportFlagsY(),
	})
}

func (a *Aggregate) exportFlagsY() ConstraintFlags {
	f := a.Flags
	if a.WeightSum != 0 {
		f &^= ConstraintY
	}
	return f
}

// Stacked: no sums, the first child whose class is not unconstrained is copied verbatim.
func aggregateZ(co *Container, skip *EmbedNode) {
	var found *EmbedNode
	co.iterateVisible(skip, func(c *EmbedNode) {
		if found != nil {
			return
		}
		if c.Class != nil && c.Class.Flags.HasAny(ClassUnconstrained) {
			return
		}
		found = c
	})

	co.agg = Aggregate{}
	if found == nil {
		co.ClearConstraints()
		return
	}
	co.agg.Flags = found.cons.Flags
	co.CopyConstraints(found)
}
