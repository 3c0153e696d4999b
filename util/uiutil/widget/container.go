package widget

import (
	"fmt"
)

// Arranges its childs along one axis policy: horizontal (x), vertical (y) or stacked (z).
type Container struct {
	ENode
	Policy  Policy
	Padding Padding

	agg  Aggregate
	dist Distribution
}

func NewContainer(p Policy) *Container {
	co := &Container{Policy: p}
	co.init(p.class(), co)
	return co
}

func NewContainerX() *Container { return NewContainer(PolicyX) }
func NewContainerY() *Container { return NewContainer(PolicyY) }
func NewContainerZ() *Container { return NewContainer(PolicyZ) }

//----------

// Consumes the padding, other attributes go to the base node.
func (co *Container) Set(attrs ...Attrib) error {
	for _, a := range attrs {
		switch t := a.(type) {
		case Padding:
			if err := t.validate(); err != nil {
				return err
			}
			co.Padding = t
		default:
			if err := co.EmbedNode.setAttrib(a); err != nil {
				return err
			}
		}
	}
	return nil
}

//----------

func (co *Container) OnSignal(sig Signal, extra interface{}) bool {
	st := policies[co.Policy]
	switch sig {
	case SignalLayout:
		lc, ok := extra.(*LayoutContext)
		if !ok {
			panic(fmt.Sprintf("layout signal without context: %T", extra))
		}
		st.distribute(co, lc)
		return true
	case SignalChildDestroyed:
		st.aggregate(co, excludedChild(extra))
		return true
	default:
		if st.reaggregate(sig) {
			st.aggregate(co, nil)
			return true
		}
		return containerSignal(&co.EmbedNode, sig, extra)
	}
}

// Recomputes the cached sums from the visible childs, skipping the excluded one (can be nil).
func (co *Container) Aggregate(skip Node) {
	var s *EmbedNode
	if skip != nil {
		s = skip.Embed()
	}
	policies[co.Policy].aggregate(co, s)
}

// Sums produced by the last aggregation.
func (co *Container) Sums() Aggregate {
	return co.agg
}

// Values used by the last layout pass.
func (co *Container) LastDistribution() Distribution {
	return co.dist
}

func (co *Container) Render(rc *RenderContext) {
	renderContainer(&co.EmbedNode, rc)
}

//----------

type Policy uint8

const (
	PolicyX Policy = iota // horizontal
	PolicyY               // vertical
	PolicyZ               // stacked
)

func (p Policy) String() string {
	switch p {
	case PolicyX:
		return "x"
	case PolicyY:
		return "y"
	case PolicyZ:
		return "z"
	}
	return "?"
}

func (p Policy) class() *Class {
	switch p {
	case PolicyX:
		return ClassContainerX
	case PolicyY:
		return ClassContainerY
	default:
		return ClassContainerZ
	}
}

//----------

type strategy struct {
	aggregate   func(co *Container, skip *EmbedNode)
	distribute  func(co *Container, lc *LayoutContext)
	reaggregate func(Signal) bool
}

var policies = map[Policy]strategy{
	PolicyX: {aggregateX, distributeX, reaggregateXY},
	PolicyY: {aggregateY, distributeY, reaggregateXY},
	PolicyZ: {aggregateZ, distributeZ, reaggregateZ},
}

func reaggregateXY(sig Signal) bool {
	switch sig {
	case SignalChildCreated,
		SignalChildConstraintsChanged,
		SignalChildHidden,
		SignalChildUnhidden:
		return true
	}
	return false
}

// Stacked containers don't react to childs being hidden or shown.
func reaggregateZ(sig Signal) bool {
	switch sig {
	case SignalChildCreated, SignalChildConstraintsChanged:
		return true
	}
	return false
}

//----------

// Cached result of an aggregation. Fixed is the sum along the policy axis, CrossMax the maximum on the other axis.
type Aggregate struct {
	Fixed     int
	CrossMax  int
	WeightSum float32
	AspectSum float32
	Flags     ConstraintFlags
}

type Distribution struct {
	Available float32 // available size along the axis, padding removed
	Required  float32
	Scale     float32 // applied to fixed and aspect childs
	Share     float32 // size of one unit of weight
	Start     float32 // initial cursor in normalized space
}

func (d Distribution) String() string {
	return fmt.Sprintf("{avail=%g req=%g scale=%g share=%g}", d.Available, d.Required, d.Scale, d.Share)
}
