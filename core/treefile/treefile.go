// Tree description files: a yaml document describing a widget tree that gets built through the class registry.
package treefile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jmigpin/glw/util/uiutil/widget"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrUnknownClass = errors.New("unknown class")

type NodeSpec struct {
	Class    string      `yaml:"class"`
	Name     string      `yaml:"name,omitempty"`
	Padding  []int       `yaml:"padding,omitempty"`
	Align    string      `yaml:"align,omitempty"`
	Alpha    *float32    `yaml:"alpha,omitempty"`
	Hidden   bool        `yaml:"hidden,omitempty"`
	Width    *int        `yaml:"width,omitempty"`
	Height   *int        `yaml:"height,omitempty"`
	Aspect   *float32    `yaml:"aspect,omitempty"`
	Weight   *float32    `yaml:"weight,omitempty"`
	Children []*NodeSpec `yaml:"children,omitempty"`
}

func Parse(b []byte) (*NodeSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	spec := &NodeSpec{}
	if err := dec.Decode(spec); err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return spec, nil
}

func ParseFile(filename string) (*NodeSpec, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	spec, err := Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return spec, nil
}

func Load(filename string) (widget.Node, error) {
	spec, err := ParseFile(filename)
	if err != nil {
		return nil, err
	}
	n, err := Build(spec)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return n, nil
}

func Marshal(spec *NodeSpec) ([]byte, error) {
	return yaml.Marshal(spec)
}

//----------

func Build(spec *NodeSpec) (widget.Node, error) {
	return build(spec, "")
}

func build(spec *NodeSpec, parentPath string) (widget.Node, error) {
	path := parentPath + "/" + spec.label()

	c, ok := widget.LookupClass(spec.Class)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "%v: %q", path, spec.Class)
	}
	n := c.New()

	attrs, err := spec.attribs()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	s, ok := n.(interface {
		Set(...widget.Attrib) error
	})
	if !ok {
		return nil, fmt.Errorf("%v: class %v is not configurable", path, c.Name)
	}
	if err := s.Set(attrs...); err != nil {
		return nil, errors.Wrap(err, path)
	}

	if len(spec.Children) > 0 {
		if _, ok := n.(*widget.Container); !ok {
			return nil, fmt.Errorf("%v: class %v can't have children", path, c.Name)
		}
	}
	for _, cs := range spec.Children {
		child, err := build(cs, path)
		if err != nil {
			return nil, err
		}
		n.Embed().Append(child)
	}
	return n, nil
}

func (spec *NodeSpec) label() string {
	if spec.Name != "" {
		return spec.Name
	}
	return spec.Class
}

func (spec *NodeSpec) attribs() ([]widget.Attrib, error) {
	u := []widget.Attrib{}
	if spec.Name != "" {
		u = append(u, widget.Name(spec.Name))
	}
	switch len(spec.Padding) {
	case 0:
	case 1:
		v := spec.Padding[0]
		u = append(u, widget.Padding{Left: v, Top: v, Right: v, Bottom: v})
	case 4:
		p := spec.Padding
		u = append(u, widget.Padding{Left: p[0], Top: p[1], Right: p[2], Bottom: p[3]})
	default:
		return nil, fmt.Errorf("padding: expecting 1 or 4 values, got %v", len(spec.Padding))
	}
	if spec.Align != "" {
		a, ok := widget.ParseAlignment(spec.Align)
		if !ok {
			return nil, fmt.Errorf("bad alignment: %q", spec.Align)
		}
		u = append(u, widget.Align(a))
	}
	if spec.Alpha != nil {
		u = append(u, widget.Alpha(*spec.Alpha))
	}
	if spec.Hidden {
		u = append(u, widget.Hidden(true))
	}
	if spec.Width != nil {
		u = append(u, widget.Width(*spec.Width))
	}
	if spec.Height != nil {
		u = append(u, widget.Height(*spec.Height))
	}
	if spec.Aspect != nil {
		u = append(u, widget.Aspect(*spec.Aspect))
	}
	if spec.Weight != nil {
		u = append(u, widget.Weight(*spec.Weight))
	}
	return u, nil
}
