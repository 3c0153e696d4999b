package fontutil

import (
	"image"
	"image/color"
	"testing"
)

func TestDefaultFontFace(t *testing.T) {
	ff := DefaultFontFace()
	if ff.Size != 12 {
		t.Fatal(ff.Size)
	}
	if ff.LineHeightInt() <= 0 {
		t.Fatal(ff.LineHeight())
	}
	// cached
	if DefaultFontFace() != ff {
		t.Fatal("face not cached")
	}
}

func TestDrawLabel(t *testing.T) {
	ff := DefaultFontFace()
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	if !DrawLabel(img, img.Bounds(), ff, color.Black, "row") {
		t.Fatal("not drawn")
	}
	painted := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Fatal("nothing painted")
	}

	// too short
	if DrawLabel(img, image.Rect(0, 0, 100, 2), ff, color.Black, "row") {
		t.Fatal("drawn")
	}
	if MeasureString(ff, "row") <= 0 {
		t.Fatal("measure")
	}
}
