package widget

import (
	"container/list"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode

	// Class handler. Returns true if the signal was handled.
	OnSignal(sig Signal, extra interface{}) bool
	Render(rc *RenderContext)
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

type EmbedNode struct {
	Name    string
	Class   *Class
	Wrapper Node
	Parent  *EmbedNode

	Alpha     float32
	Alignment Alignment

	// written by the parent layout, read by this node layout/render
	ParentPos   Vec3
	ParentScale Vec3
	ParentSize  [2]int
	NormWeight  float32

	flags  Flags
	cons   Constraints
	childs list.List
	elem   *list.Element

	sigHandlers []SignalHandlerFunc
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

func (en *EmbedNode) init(c *Class, wrapper Node) {
	en.Class = c
	en.Wrapper = wrapper
	en.Alpha = 1
	if c != nil {
		en.Alignment = c.DefaultAlign
	}
}

//----------

func (en *EmbedNode) Append(nodes ...Node) {
	for _, n := range nodes {
		en.InsertBefore(n, nil)
	}
}

func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	childe := child.Embed()

	if childe == en {
		panic("inserting into itself")
	}
	if childe.Parent != nil {
		panic("element already has a parent")
	}

	var elem *list.Element
	if next == nil {
		elem = en.childs.PushBack(childe)
	} else {
		// ensure next element is a child of this node
		if next.Parent != en {
			panic("next is not a child of this node")
		}
		elem = en.childs.InsertBefore(childe, next.elem)
	}
	if elem == nil {
		panic("element not inserted")
	}

	childe.elem = elem
	childe.Parent = en
	childe.Wrapper = child // auto set the wrapper

	en.signal(SignalChildCreated, child)
}

//----------

// The parent sees the child as destroyed while it is still linked (the child is excluded from aggregation), and only then is the child unlinked.
func (en *EmbedNode) Remove(child Node) {
	childe := child.Embed()
	if childe.Parent != en {
		panic("not a child of this node")
	}

	en.signal(SignalChildDestroyed, child)

	en.childs.Remove(childe.elem)
	childe.elem = nil
	childe.Parent = nil
}

// Destroys the childs (last to first) and detaches from the parent.
func (en *EmbedNode) Destroy() {
	for e := en.childs.Back(); e != nil; e = en.childs.Back() {
		elemEmbed(e).Destroy()
	}
	if en.Parent != nil {
		en.Parent.Remove(en.Wrapper)
	}
}

//----------

func (en *EmbedNode) Hide() {
	if en.flags.HasAny(FlagHidden) {
		return
	}
	en.flags.Add(FlagHidden)
	if en.Parent != nil {
		en.Parent.signal(SignalChildHidden, en.Wrapper)
	}
}

func (en *EmbedNode) Unhide() {
	if !en.flags.HasAny(FlagHidden) {
		return
	}
	en.flags.Remove(FlagHidden)
	if en.Parent != nil {
		en.Parent.signal(SignalChildUnhidden, en.Wrapper)
	}
}

func (en *EmbedNode) Hidden() bool {
	return en.flags.HasAny(FlagHidden)
}

//----------

func (en *EmbedNode) Constraints() Constraints {
	return en.cons
}

// Notifies the parent only if the constraints changed. This is what stops the upward bubbling.
func (en *EmbedNode) SetConstraints(c Constraints) {
	if c == en.cons {
		return
	}
	en.cons = c
	if en.Parent != nil {
		en.Parent.signal(SignalChildConstraintsChanged, en.Wrapper)
	}
}

func (en *EmbedNode) CopyConstraints(from *EmbedNode) {
	en.SetConstraints(from.cons)
}

func (en *EmbedNode) ClearConstraints() {
	en.SetConstraints(Constraints{})
}

//----------

func (en *EmbedNode) ChildsLen() int {
	return en.childs.Len()
}

func elemEmbed(e *list.Element) *EmbedNode {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode)
}
func elemWrapper(e *list.Element) Node {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode).Wrapper
}

func (en *EmbedNode) FirstChild() *EmbedNode {
	return elemEmbed(en.childs.Front())
}
func (en *EmbedNode) LastChild() *EmbedNode {
	return elemEmbed(en.childs.Back())
}
func (en *EmbedNode) NextSibling() *EmbedNode {
	return elemEmbed(en.elem.Next())
}

//----------

func (en *EmbedNode) Iterate(f func(*EmbedNode) bool) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		if !f(elemEmbed(e)) {
			break
		}
	}
}

// Iterate2 family functions: iterate all without break possibility.

func (en *EmbedNode) Iterate2(f func(*EmbedNode)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemEmbed(e))
	}
}
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemWrapper(e))
	}
}

// Visible childs only, skipping the excluded one (can be nil).
func (en *EmbedNode) iterateVisible(skip *EmbedNode, f func(*EmbedNode)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		c := elemEmbed(e)
		if c.flags.HasAny(FlagHidden) || c == skip {
			continue
		}
		f(c)
	}
}

func (en *EmbedNode) ChildsWrappers() []Node {
	w := []Node{}
	en.IterateWrappers2(func(c Node) {
		w = append(w, c)
	})
	return w
}

//----------

// Path from the root, used in logs and dumps.
func (en *EmbedNode) Path() string {
	s := en.String()
	if en.Parent != nil {
		return en.Parent.Path() + "/" + s
	}
	return "/" + s
}

func (en *EmbedNode) String() string {
	if en.Name != "" {
		return en.Name
	}
	if en.Class != nil {
		return en.Class.Name
	}
	return "?"
}

//----------

type Flags uint16

func (m *Flags) Add(u Flags)        { *m |= u }
func (m *Flags) Remove(u Flags)     { *m &^= u }
func (m Flags) Mask(u Flags) Flags  { return m & u }
func (m Flags) HasAny(u Flags) bool { return m.Mask(u) > 0 }

const (
	FlagHidden Flags = 1 << iota
)

//----------

type Alignment uint8

const (
	AlignStart Alignment = iota // left, top
	AlignCenter
	AlignEnd // right, bottom
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "?"
}

func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "start", "left", "top":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end", "right", "bottom":
		return AlignEnd, true
	}
	return 0, false
}

//----------

type Vec3 struct {
	X, Y, Z float32
}
