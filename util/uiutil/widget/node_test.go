package widget

import (
	"testing"
)

func childNames(en *EmbedNode) []string {
	u := []string{}
	en.Iterate2(func(c *EmbedNode) {
		u = append(u, c.Name)
	})
	return u
}

func TestNodeInsert(t *testing.T) {
	co := NewContainerX()
	a := newDummy(t, Name("a"))
	b := newDummy(t, Name("b"))
	c := newDummy(t, Name("c"))
	co.Append(a, c)
	co.InsertBefore(b, &c.EmbedNode)

	u := childNames(&co.EmbedNode)
	if len(u) != 3 || u[0] != "a" || u[1] != "b" || u[2] != "c" {
		t.Fatal(u)
	}
	if co.FirstChild() != &a.EmbedNode || co.LastChild() != &c.EmbedNode {
		t.Fatal("first/last")
	}
	if b.NextSibling() != &c.EmbedNode || c.NextSibling() != nil {
		t.Fatal("siblings")
	}
	if b.Path() != "/container_x/b" {
		t.Fatal(b.Path())
	}
	if len(co.ChildsWrappers()) != 3 {
		t.Fatal("wrappers")
	}
}

func TestNodeInsertPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%v: expected panic", name)
			}
		}()
		fn()
	}

	co := NewContainerX()
	co2 := NewContainerY()
	a := newDummy(t)
	co.Append(a)

	mustPanic("self", func() { co.Append(co) })
	mustPanic("has parent", func() { co2.Append(a) })
	mustPanic("mark not child", func() {
		co2.InsertBefore(newDummy(t), &a.EmbedNode)
	})
	mustPanic("remove not child", func() { co2.Remove(a) })
}

func TestNodeDestroyTree(t *testing.T) {
	root := NewContainerY()
	row := NewContainerX()
	a := newDummy(t, Width(10), Height(10))
	b := newDummy(t, Width(20), Height(10))
	row.Append(a, b)
	root.Append(row, newDummy(t, Height(5)))

	if root.Constraints().SizeY != 15 {
		t.Fatal(root.Constraints())
	}

	row.Destroy()

	if row.ChildsLen() != 0 || a.Parent != nil || b.Parent != nil {
		t.Fatal("childs not destroyed")
	}
	if root.ChildsLen() != 1 || row.Parent != nil {
		t.Fatal("not removed from parent")
	}
	c := root.Constraints()
	if c.SizeY != 5 || c.SizeX != 0 {
		t.Fatal(c)
	}
}

func TestNodeHideTwice(t *testing.T) {
	co := NewContainerX()
	l := newDummy(t)
	co.Append(l)
	n := 0
	co.AddSignalHandler(func(_ Node, sig Signal, _ interface{}) {
		if sig == SignalChildHidden || sig == SignalChildUnhidden {
			n++
		}
	})
	l.Hide()
	l.Hide()
	l.Unhide()
	l.Unhide()
	if n != 2 {
		t.Fatal(n)
	}
}

func TestNodeDefaults(t *testing.T) {
	type in struct {
		class string
		align Alignment
	}
	ins := []in{
		{"container_x", AlignStart},
		{"container_y", AlignStart},
		{"container_z", AlignCenter},
		{"dummy", AlignStart},
	}
	for _, u := range ins {
		n, err := NewNode(u.class)
		if err != nil {
			t.Fatal(err)
		}
		en := n.Embed()
		if en.Alpha != 1 || en.Alignment != u.align || en.Class.Name != u.class {
			t.Fatal(u.class, en.Alpha, en.Alignment)
		}
		if en.Wrapper != n {
			t.Fatal("wrapper")
		}
	}
	if _, err := NewNode("nope"); err == nil {
		t.Fatal("expected error")
	}
	if len(ClassNames()) < 5 {
		t.Fatal(ClassNames())
	}
}

func TestNodeConstraintHelpers(t *testing.T) {
	co := NewContainerX()
	a, b, c := newDummy(t), newDummy(t), newDummy(t)
	co.Append(a, b, c)
	a.SetConstraints(FixedHeight(12))
	b.SetConstraints(AspectRatio(2))
	c.SetConstraints(FlexWeight(3))

	s := co.Sums()
	if s.CrossMax != 12 || s.AspectSum != 2 || s.WeightSum != 4 {
		t.Fatal(s)
	}
	if co.Constraints().Flags != ConstraintY {
		t.Fatal(co.Constraints())
	}
}
