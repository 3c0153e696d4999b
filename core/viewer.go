package core

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/glw/core/fswatcher"
	"github.com/jmigpin/glw/core/preview"
	"github.com/jmigpin/glw/core/treefile"
	"github.com/jmigpin/glw/util/fontutil"
	"github.com/jmigpin/glw/util/uiutil/event"
	"github.com/jmigpin/glw/util/uiutil/widget"
)

// Loads a tree file and lays it out on a fixed size surface, once or on every file change.
type Viewer struct {
	Opt    *Options
	Stdout io.Writer
	Root   widget.Node

	face    *fontutil.FontFace
	painter *preview.Painter
	clicked widget.Node
}

func NewViewer(opt *Options, stdout io.Writer) (*Viewer, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	v := &Viewer{Opt: opt, Stdout: stdout}
	if opt.FontSize > 0 {
		v.face = fontutil.DefaultFont().FontFace2(opt.FontSize)
	}
	if opt.Debug {
		log.Print(spew.Sdump(opt))
	}
	return v, nil
}

func (v *Viewer) Run(ctx context.Context) error {
	if err := v.Reload(); err != nil {
		if !v.Opt.Watch {
			return err
		}
		log.Print(err) // keep watching, the file can be fixed
	}
	if !v.Opt.Watch {
		return nil
	}
	return v.watch(ctx)
}

func (v *Viewer) watch(ctx context.Context) error {
	w, err := fswatcher.NewFsnWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	fw, err := fswatcher.NewFileWatcher(w, v.Opt.Filename)
	if err != nil {
		return err
	}
	log.Printf("watching %v", v.Opt.Filename)
	return fw.Run(ctx, func(err error) {
		if err != nil {
			log.Print(err)
			return
		}
		if err := v.Reload(); err != nil {
			log.Print(err)
		}
	})
}

//----------

// Rebuilds the tree from the file. On error the previous tree is kept.
func (v *Viewer) Reload() error {
	root, err := treefile.Load(v.Opt.Filename)
	if err != nil {
		return err
	}
	v.SetRoot(root)
	return v.Tick()
}

func (v *Viewer) SetRoot(root widget.Node) {
	if v.Root != nil {
		v.Root.Embed().Destroy()
	}
	v.Root = root
	v.painter = nil
	walk(root, func(n widget.Node) {
		if l, ok := n.(*widget.Leaf); ok {
			l.OnInputEvent = func(ev interface{}) event.Handle {
				return v.onLeafEvent(l, ev)
			}
		}
		if v.Opt.Debug {
			n.Embed().AddSignalHandler(traceSignal)
		}
	})
}

// One layout pass followed by a render and the outputs.
func (v *Viewer) Tick() error {
	if v.Root == nil {
		return fmt.Errorf("no tree loaded")
	}
	w, h := v.Opt.Width, v.Opt.Height
	widget.Layout(v.Root, &widget.LayoutContext{
		SizeX: float32(w),
		SizeY: float32(h),
		Alpha: 1,
	})
	p := preview.NewPainter(w, h, v.face)
	widget.Render(v.Root, &widget.RenderContext{
		SizeX:   float32(w),
		SizeY:   float32(h),
		Alpha:   1,
		Mtx:     widget.RootMatrix(w, h),
		Painter: p,
	})
	v.painter = p

	if v.Opt.Dump {
		if err := Dump(v.Stdout, v.Root, v.Opt.Color); err != nil {
			return err
		}
	}

	points, err := v.Opt.Clicks.Points()
	if err != nil {
		return err
	}
	for _, pt := range points {
		s := "none"
		if n := v.Click(pt); n != nil {
			s = n.Embed().Path()
		}
		top := "none"
		if n := p.Hit(pt); n != nil {
			top = n.Embed().Path()
		}
		fmt.Fprintf(v.Stdout, "click %v,%v: %v (top: %v)\n", pt.X, pt.Y, s, top)
	}

	if v.Opt.Output != "" {
		if err := preview.WriteFile(v.Opt.Output, p.Img, v.Opt.OutputFormat()); err != nil {
			return err
		}
		if v.Opt.Debug {
			log.Printf("wrote %v", v.Opt.Output)
		}
	}
	return nil
}

//----------

// Dispatches a mouse down through the tree. Returns the leaf that consumed it, if any.
func (v *Viewer) Click(pt image.Point) widget.Node {
	if v.Root == nil {
		return nil
	}
	v.clicked = nil
	ev := &event.MouseDown{Point: pt, Button: event.ButtonLeft}
	if widget.SendEvent(v.Root, ev) == event.NotHandled {
		return nil
	}
	return v.clicked
}

func (v *Viewer) onLeafEvent(l *widget.Leaf, ev interface{}) event.Handle {
	pt, ok := event.Point(ev)
	if !ok || v.painter == nil {
		return event.NotHandled
	}
	r, ok := v.painter.Rects[l]
	if !ok || !pt.In(r) {
		return event.NotHandled
	}
	v.clicked = l
	return event.Handled
}

//----------

func traceSignal(n widget.Node, sig widget.Signal, extra interface{}) {
	switch t := extra.(type) {
	case *widget.LayoutContext:
		log.Printf("signal: %v: %v %vx%v", n.Embed().Path(), sig, t.SizeX, t.SizeY)
	default:
		log.Printf("signal: %v: %v", n.Embed().Path(), sig)
	}
}

func walk(n widget.Node, fn func(widget.Node)) {
	fn(n)
	n.Embed().IterateWrappers2(func(c widget.Node) {
		walk(c, fn)
	})
}
