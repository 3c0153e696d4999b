package widget

import (
	"fmt"
	"sort"
)

type Class struct {
	Name         string
	Flags        ClassFlags
	DefaultAlign Alignment
	New          func() Node
}

type ClassFlags uint8

func (f ClassFlags) HasAny(u ClassFlags) bool { return f&u != 0 }

const (
	// Doesn't constrain the size of a stacked parent.
	ClassUnconstrained ClassFlags = 1 << iota
)

//----------

var (
	ClassContainerX = &Class{Name: "container_x", DefaultAlign: AlignStart}
	ClassContainerY = &Class{Name: "container_y", DefaultAlign: AlignStart}
	ClassContainerZ = &Class{Name: "container_z", DefaultAlign: AlignCenter}
	ClassDummy      = &Class{Name: "dummy"}
	ClassBackdrop   = &Class{Name: "backdrop", Flags: ClassUnconstrained}
)

var classes = map[string]*Class{}

func init() {
	ClassContainerX.New = func() Node { return NewContainerX() }
	ClassContainerY.New = func() Node { return NewContainerY() }
	ClassContainerZ.New = func() Node { return NewContainerZ() }
	ClassDummy.New = func() Node { return NewLeaf(ClassDummy) }
	ClassBackdrop.New = func() Node { return NewLeaf(ClassBackdrop) }

	RegisterClass(ClassContainerX)
	RegisterClass(ClassContainerY)
	RegisterClass(ClassContainerZ)
	RegisterClass(ClassDummy)
	RegisterClass(ClassBackdrop)
}

func RegisterClass(c *Class) {
	if _, ok := classes[c.Name]; ok {
		panic(fmt.Sprintf("class already registered: %v", c.Name))
	}
	if c.New == nil {
		panic(fmt.Sprintf("class without constructor: %v", c.Name))
	}
	classes[c.Name] = c
}

func LookupClass(name string) (*Class, bool) {
	c, ok := classes[name]
	return c, ok
}

func NewNode(class string) (Node, error) {
	c, ok := classes[class]
	if !ok {
		return nil, fmt.Errorf("class not registered: %q", class)
	}
	return c.New(), nil
}

func ClassNames() []string {
	u := make([]string, 0, len(classes))
	for k := range classes {
		u = append(u, k)
	}
	sort.Strings(u)
	return u
}
