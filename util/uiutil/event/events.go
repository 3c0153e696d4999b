package event

import (
	"image"
)

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseDown struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseUp struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}

//----------

type KeyDown struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

type KeyUp struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	ModAlt
)

//----------

type KeySym int

const (
	KSymNone KeySym = 0

	// let ascii codes keep their values
	KSym_dummy_ KeySym = 256 + iota

	KSymSpace
	KSymReturn
	KSymEscape
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymTab
)

// Point of pointer events. Key events have no point.
func Point(ev interface{}) (image.Point, bool) {
	switch t := ev.(type) {
	case *MouseDown:
		return t.Point, true
	case *MouseUp:
		return t.Point, true
	case *MouseMove:
		return t.Point, true
	}
	return image.Point{}, false
}
