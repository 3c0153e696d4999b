package testutil

import (
	"fmt"
	"image"
	"image/color"
)

func CompareImgs(img1, img2 image.Image) error {
	if img1.Bounds() != img2.Bounds() {
		return fmt.Errorf("bounds: %v %v", img1.Bounds(), img2.Bounds())
	}
	p, n := firstDiff(img1, img2, img1.Bounds())
	if n > 0 {
		c1 := color.RGBAModel.Convert(img1.At(p.X, p.Y))
		c2 := color.RGBAModel.Convert(img2.At(p.X, p.Y))
		return fmt.Errorf("colors: xy=(%v,%v): %v %v (nfails: %v)", p.X, p.Y, c1, c2, n)
	}
	return nil
}

// Number of pixels inside r that differ from c.
func CountNotColor(img image.Image, r image.Rectangle, c color.Color) int {
	c0 := color.RGBAModel.Convert(c)
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != c0 {
				n++
			}
		}
	}
	return n
}

func firstDiff(img1, img2 image.Image, r image.Rectangle) (image.Point, int) {
	first := image.Point{}
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c1 := color.RGBAModel.Convert(img1.At(x, y))
			c2 := color.RGBAModel.Convert(img2.At(x, y))
			if c1 != c2 {
				n++
				if n == 1 {
					first = image.Point{x, y}
				}
			}
		}
	}
	return first, n
}
