package imageutil

import (
	"image/color"
)

func IntRGBA(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	c2 := color.RGBAModel.Convert(c).(color.RGBA)
	if v < 0 || v > 1 {
		panic("!")
	}
	c2.R += uint8(v * float64((255 - c2.R)))
	c2.G += uint8(v * float64((255 - c2.G)))
	c2.B += uint8(v * float64((255 - c2.B)))
	return c2
}

// Distinct fill colors cycling by tree depth.
var DepthPalette = []color.RGBA{
	IntRGBA(0x4e79a7),
	IntRGBA(0xf28e2b),
	IntRGBA(0x59a14f),
	IntRGBA(0xe15759),
	IntRGBA(0x76b7b2),
	IntRGBA(0xedc948),
}

func DepthColor(depth int) color.RGBA {
	return DepthPalette[depth%len(DepthPalette)]
}
