package fontutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draws a single line of text at the top left of r, clipped to r. Returns false if it didn't fit in height.
func DrawLabel(dst draw.Image, r image.Rectangle, ff *FontFace, c color.Color, s string) bool {
	if r.Dy() < ff.LineHeightInt() || r.Dx() <= 0 {
		return false
	}
	sub, ok := dst.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return false
	}
	clip, ok := sub.SubImage(r).(draw.Image)
	if !ok {
		return false
	}
	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(c),
		Face: ff.Face,
		Dot:  fixed.P(r.Min.X, r.Min.Y).Add(ff.BaseLine()),
	}
	d.DrawString(s)
	return true
}

func MeasureString(ff *FontFace, s string) int {
	return font.MeasureString(ff.Face, s).Ceil()
}
