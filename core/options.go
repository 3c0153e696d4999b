package core

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/jmigpin/glw/core/preview"
	toml "github.com/pelletier/go-toml/v2"
)

type Options struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Output string `toml:"output"`
	Format string `toml:"format"` // empty: from the output extension

	FontSize float64 `toml:"fontsize"` // zero: no labels

	Watch bool `toml:"watch"`
	Dump  bool `toml:"dump"`
	Color bool `toml:"color"`
	Debug bool `toml:"debug"`

	Clicks ClicksOpt `toml:"clicks"`

	Filename string `toml:"-"`
}

func DefaultOptions() *Options {
	return &Options{
		Width:    640,
		Height:   480,
		FontSize: 10,
		Dump:     true,
	}
}

// Values present in the file override the current ones.
func (o *Options) LoadFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return nil
}

func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("bad size: %vx%v", o.Width, o.Height)
	}
	if o.Format != "" {
		if _, err := preview.ParseFormat(o.Format); err != nil {
			return err
		}
	}
	if o.FontSize < 0 {
		return fmt.Errorf("bad font size: %v", o.FontSize)
	}
	if _, err := o.Clicks.Points(); err != nil {
		return err
	}
	if o.Filename == "" {
		return fmt.Errorf("missing tree filename")
	}
	return nil
}

func (o *Options) OutputFormat() preview.Format {
	if o.Format != "" {
		if f, err := preview.ParseFormat(o.Format); err == nil {
			return f
		}
	}
	return preview.FormatFromFilename(o.Output)
}

//----------

// implements flag.Value interface; "x,y" strings
type ClicksOpt []string

func (co *ClicksOpt) Set(s string) error {
	if _, err := parsePoint(s); err != nil {
		return err
	}
	*co = append(*co, s)
	return nil
}

func (co *ClicksOpt) String() string {
	return strings.Join(*co, " ")
}

func (co ClicksOpt) Points() ([]image.Point, error) {
	u := []image.Point{}
	for _, s := range co {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}
		u = append(u, p)
	}
	return u, nil
}

func parsePoint(s string) (image.Point, error) {
	a := strings.Split(s, ",")
	if len(a) != 2 {
		return image.Point{}, fmt.Errorf("bad point: %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a[0]))
	if err != nil {
		return image.Point{}, fmt.Errorf("bad point: %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(a[1]))
	if err != nil {
		return image.Point{}, fmt.Errorf("bad point: %q: %w", s, err)
	}
	return image.Point{x, y}, nil
}
