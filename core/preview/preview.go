package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmigpin/glw/util/fontutil"
	"github.com/jmigpin/glw/util/imageutil"
	"github.com/jmigpin/glw/util/mathutil"
	"github.com/jmigpin/glw/util/uiutil/widget"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Rasterizes a rendered tree: containers as outlines, leafs as filled boxes colored by depth.
type Painter struct {
	Img   *image.RGBA
	Face  *fontutil.FontFace // labels are not drawn if nil
	Rects map[widget.Node]image.Rectangle
	Order []widget.Node // paint order

	Background color.Color
	Fg         color.Color
}

func NewPainter(w, h int, face *fontutil.FontFace) *Painter {
	p := &Painter{
		Img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		Face:       face,
		Rects:      map[widget.Node]image.Rectangle{},
		Background: imageutil.IntRGBA(0xf8f8f8),
		Fg:         imageutil.IntRGBA(0x1a1a1a),
	}
	b := p.Img.Bounds()
	imageutil.FillRectangle(p.Img, &b, p.Background)
	return p
}

func (p *Painter) PaintNode(n widget.Node, r image.Rectangle, alpha float32) {
	p.Rects[n] = r
	p.Order = append(p.Order, n)

	r2 := r.Intersect(p.Img.Bounds())
	if r2.Empty() {
		return
	}
	c := imageutil.DepthColor(Depth(n))
	if _, ok := n.(*widget.Container); ok {
		imageutil.BorderRectangle(p.Img, &r2, c, 1)
		return
	}
	if n.Embed().Class.Flags.HasAny(widget.ClassUnconstrained) {
		imageutil.BlendRectangle(p.Img, &r2, imageutil.Tint(c, 0.7), alpha*0.5)
	} else {
		imageutil.BlendRectangle(p.Img, &r2, c, alpha*0.8)
	}
	imageutil.BorderRectangle(p.Img, &r2, imageutil.Tint(c, 0.3), 1)

	if p.Face != nil {
		lr := r2.Inset(mathutil.Limit(r2.Dy()/8, 1, 4))
		if !lr.Empty() {
			_ = fontutil.DrawLabel(p.Img, lr, p.Face, p.Fg, label(n))
		}
	}
}

// Topmost painted leaf containing the point, or nil.
func (p *Painter) Hit(pt image.Point) widget.Node {
	for i := len(p.Order) - 1; i >= 0; i-- {
		n := p.Order[i]
		if _, ok := n.(*widget.Container); ok {
			continue
		}
		if pt.In(p.Rects[n]) {
			return n
		}
	}
	return nil
}

//----------

func Depth(n widget.Node) int {
	d := 0
	for en := n.Embed().Parent; en != nil; en = en.Parent {
		d++
	}
	return d
}

func label(n widget.Node) string {
	en := n.Embed()
	if en.Name != "" {
		return en.Name
	}
	return en.Class.Name
}

//----------

type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("unsupported image format: %q", s)
}

// Format from the filename extension, defaults to png.
func FormatFromFilename(name string) Format {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return FormatPNG
	}
	return f
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format: %q", f)
}

func WriteFile(filename string, img image.Image, f Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
