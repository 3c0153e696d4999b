package widget

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAttrib = errors.New("unknown attribute")
	ErrInvalidAttrib = errors.New("invalid attribute")
)

// Typed node configuration. Each node type consumes the attributes it knows and passes the others to the base node.
type Attrib interface {
	attrib()
}

type Name string
type Alpha float32
type Align Alignment
type Hidden bool
type Width int
type Height int
type Aspect float32
type Weight float32

type Padding struct {
	Left, Top, Right, Bottom int
}

func (Name) attrib()    {}
func (Alpha) attrib()   {}
func (Align) attrib()   {}
func (Hidden) attrib()  {}
func (Width) attrib()   {}
func (Height) attrib()  {}
func (Aspect) attrib()  {}
func (Weight) attrib()  {}
func (Padding) attrib() {}

// int16 range.
const maxPadding = 1<<15 - 1

func (p Padding) validate() error {
	for _, v := range [...]int{p.Left, p.Top, p.Right, p.Bottom} {
		if v < 0 || v > maxPadding {
			return fmt.Errorf("%w: padding %v", ErrInvalidAttrib, p)
		}
	}
	return nil
}

//----------

func (en *EmbedNode) Set(attrs ...Attrib) error {
	for _, a := range attrs {
		if err := en.setAttrib(a); err != nil {
			return err
		}
	}
	return nil
}

// Base consumer.
func (en *EmbedNode) setAttrib(a Attrib) error {
	c := en.cons
	switch t := a.(type) {
	case Name:
		en.Name = string(t)
		return nil
	case Alpha:
		if t < 0 || t > 1 {
			return fmt.Errorf("%w: alpha %v", ErrInvalidAttrib, t)
		}
		en.Alpha = float32(t)
		return nil
	case Align:
		en.Alignment = Alignment(t)
		return nil
	case Hidden:
		if t {
			en.Hide()
		} else {
			en.Unhide()
		}
		return nil
	case Width:
		if t < 0 {
			return fmt.Errorf("%w: width %v", ErrInvalidAttrib, t)
		}
		c.SizeX = int(t)
		c.Flags |= ConstraintX
	case Height:
		if t < 0 {
			return fmt.Errorf("%w: height %v", ErrInvalidAttrib, t)
		}
		c.SizeY = int(t)
		c.Flags |= ConstraintY
	case Aspect:
		if t <= 0 {
			return fmt.Errorf("%w: aspect %v", ErrInvalidAttrib, t)
		}
		c.Aspect = float32(t)
		c.Flags |= ConstraintA
	case Weight:
		if t < 0 {
			return fmt.Errorf("%w: weight %v", ErrInvalidAttrib, t)
		}
		c.Weight = float32(t)
		c.Flags |= ConstraintW
	default:
		return fmt.Errorf("%w: %T", ErrUnknownAttrib, a)
	}
	en.SetConstraints(c)
	return nil
}
