package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmigpin/glw/util/uiutil/widget"
	"github.com/muesli/termenv"
)

// Writes one line per node with its constraints and last layout placement. Hidden nodes are marked and their subtrees skipped.
func Dump(w io.Writer, n widget.Node, color bool) error {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	d := &dumper{out: termenv.NewOutput(w, opts...)}
	d.node(n, 0)
	return d.err
}

type dumper struct {
	out *termenv.Output
	err error
}

func (d *dumper) node(n widget.Node, depth int) {
	if d.err != nil {
		return
	}
	en := n.Embed()
	indent := strings.Repeat("  ", depth)

	name := d.out.String(label(en)).Bold()
	class := d.out.String(en.Class.Name).Foreground(d.out.Color("4"))
	if en.Hidden() {
		hidden := d.out.String("hidden").Foreground(d.out.Color("8"))
		_, d.err = fmt.Fprintf(d.out, "%s%s %s %s\n", indent, name, class, hidden)
		return
	}

	u := []string{
		fmt.Sprintf("cons=%v", en.Constraints()),
		fmt.Sprintf("size=%vx%v", en.ParentSize[0], en.ParentSize[1]),
		fmt.Sprintf("pos=(%.4f,%.4f)", en.ParentPos.X, en.ParentPos.Y),
		fmt.Sprintf("scale=(%.4f,%.4f)", en.ParentScale.X, en.ParentScale.Y),
	}
	if en.Alpha != 1 {
		u = append(u, fmt.Sprintf("alpha=%v", en.Alpha))
	}
	if co, ok := n.(*widget.Container); ok {
		dist := co.LastDistribution()
		s := fmt.Sprintf("dist=%v", dist)
		if dist.Scale > 0 && dist.Scale < 1 {
			u = append(u, d.out.String(s).Foreground(d.out.Color("1")).String())
		} else {
			u = append(u, s)
		}
	}
	_, d.err = fmt.Fprintf(d.out, "%s%s %s %s\n", indent, name, class, strings.Join(u, " "))

	en.IterateWrappers2(func(c widget.Node) {
		d.node(c, depth+1)
	})
}

func label(en *widget.EmbedNode) string {
	if en.Name != "" {
		return en.Name
	}
	return "-"
}
