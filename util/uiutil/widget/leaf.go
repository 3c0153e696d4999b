package widget

import (
	"github.com/jmigpin/glw/util/uiutil/event"
)

// Node without childs. Exports whatever constraints it is given.
type Leaf struct {
	ENode
	OnInputEvent func(ev interface{}) event.Handle

	// last layout context received
	Size [2]float32
}

func NewLeaf(c *Class) *Leaf {
	l := &Leaf{}
	l.init(c, l)
	return l
}

func (l *Leaf) OnSignal(sig Signal, extra interface{}) bool {
	switch sig {
	case SignalLayout:
		if lc, ok := extra.(*LayoutContext); ok {
			l.Size = [2]float32{lc.SizeX, lc.SizeY}
		}
	case SignalEvent:
		if l.OnInputEvent != nil {
			return bool(l.OnInputEvent(extra))
		}
	}
	return false
}

func (l *Leaf) Render(rc *RenderContext) {
	renderLeaf(&l.EmbedNode, rc)
}
