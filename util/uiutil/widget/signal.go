package widget

import (
	"github.com/jmigpin/glw/util/uiutil/event"
)

type Signal int

const (
	SignalNone Signal = iota
	SignalLayout
	SignalChildCreated
	SignalChildDestroyed
	SignalChildConstraintsChanged
	SignalChildHidden
	SignalChildUnhidden
	SignalEvent
)

func (s Signal) String() string {
	switch s {
	case SignalLayout:
		return "layout"
	case SignalChildCreated:
		return "child-created"
	case SignalChildDestroyed:
		return "child-destroyed"
	case SignalChildConstraintsChanged:
		return "child-constraints-changed"
	case SignalChildHidden:
		return "child-hidden"
	case SignalChildUnhidden:
		return "child-unhidden"
	case SignalEvent:
		return "event"
	case SignalNone:
		return "none"
	}
	return "unknown"
}

// Observers run after the class handler. The handled result of the class handler is kept.
type SignalHandlerFunc func(n Node, sig Signal, extra interface{})

func (en *EmbedNode) AddSignalHandler(fn SignalHandlerFunc) {
	en.sigHandlers = append(en.sigHandlers, fn)
}

//----------

// Sends a signal to the node class handler and then to the registered observers.
func SendSignal(n Node, sig Signal, extra interface{}) bool {
	h := n.OnSignal(sig, extra)
	for _, fn := range n.Embed().sigHandlers {
		fn(n, sig, extra)
	}
	return h
}

func (en *EmbedNode) signal(sig Signal, extra interface{}) bool {
	if en.Wrapper == nil {
		return false
	}
	return SendSignal(en.Wrapper, sig, extra)
}

//----------

// Entry point of the per tick layout, called on the root by the external scheduler.
func Layout(n Node, lc *LayoutContext) {
	SendSignal(n, SignalLayout, lc)
}

// Offers an input event to the tree. Returns if some node consumed it.
func SendEvent(n Node, ev interface{}) event.Handle {
	return event.Handle(SendSignal(n, SignalEvent, ev))
}

//----------

// Incoming layout context: the resolved available size and the opacity.
type LayoutContext struct {
	SizeX float32
	SizeY float32
	Alpha float32
}

// Below this opacity the subtree layout is skipped and the previous transforms are left as they are.
const AlphaThreshold = 0.01

//----------

// Generic container reaction, shared by all the policies: offer input events depth first to the visible childs, in order.
func containerSignal(en *EmbedNode, sig Signal, extra interface{}) bool {
	switch sig {
	case SignalEvent:
		handled := false
		en.Iterate(func(c *EmbedNode) bool {
			if c.flags.HasAny(FlagHidden) {
				return true
			}
			if SendSignal(c.Wrapper, SignalEvent, extra) {
				handled = true
				return false
			}
			return true
		})
		return handled
	}
	return false
}

func excludedChild(extra interface{}) *EmbedNode {
	if n, ok := extra.(Node); ok && n != nil {
		return n.Embed()
	}
	return nil
}
