package widget

import (
	"image"

	"github.com/chewxy/math32"
)

type RenderContext struct {
	SizeX   float32
	SizeY   float32
	Alpha   float32
	Mtx     Mtx
	Painter Painter
}

// Receives every rendered node with its absolute pixel rectangle and composed alpha.
type Painter interface {
	PaintNode(n Node, r image.Rectangle, alpha float32)
}

func Render(n Node, rc *RenderContext) {
	n.Render(rc)
}

func renderContainer(en *EmbedNode, rc *RenderContext) {
	alpha := rc.Alpha * en.Alpha
	if alpha < AlphaThreshold {
		return
	}
	if rc.Painter != nil {
		rc.Painter.PaintNode(en.Wrapper, rc.Mtx.Rect(), alpha)
	}
	en.iterateVisible(nil, func(c *EmbedNode) {
		rc0 := *rc
		rc0.Alpha = alpha
		rc0.SizeX = float32(c.ParentSize[0])
		rc0.SizeY = float32(c.ParentSize[1])
		rc0.Mtx = rc.Mtx.Translate(c.ParentPos).Scale(c.ParentScale)
		c.Wrapper.Render(&rc0)
	})
}

func renderLeaf(en *EmbedNode, rc *RenderContext) {
	alpha := rc.Alpha * en.Alpha
	if alpha < AlphaThreshold || rc.Painter == nil {
		return
	}
	rc.Painter.PaintNode(en.Wrapper, rc.Mtx.Rect(), alpha)
}

//----------

// Maps normalized coordinates to pixels. The z axis is carried but doesn't affect the 2d projection.
type Mtx struct {
	Sx, Sy float32
	Tx, Ty float32
}

// Maps the normalized [-1,1] square onto a w*h image (y up in normalized space, y down in pixels).
func RootMatrix(w, h int) Mtx {
	return Mtx{
		Sx: float32(w) / 2,
		Sy: -float32(h) / 2,
		Tx: float32(w) / 2,
		Ty: float32(h) / 2,
	}
}

func (m Mtx) Translate(v Vec3) Mtx {
	m.Tx += m.Sx * v.X
	m.Ty += m.Sy * v.Y
	return m
}

func (m Mtx) Scale(v Vec3) Mtx {
	m.Sx *= v.X
	m.Sy *= v.Y
	return m
}

func (m Mtx) Apply(x, y float32) (float32, float32) {
	return m.Sx*x + m.Tx, m.Sy*y + m.Ty
}

// Pixel rectangle of the normalized square.
func (m Mtx) Rect() image.Rectangle {
	x0, y0 := m.Apply(-1, 1)
	x1, y1 := m.Apply(1, -1)
	r := image.Rect(roundPixel(x0), roundPixel(y0), roundPixel(x1), roundPixel(y1))
	return r.Canon()
}

func roundPixel(v float32) int {
	return int(math32.Floor(v + 0.5))
}
