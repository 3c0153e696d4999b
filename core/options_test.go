package core

import (
	"flag"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmigpin/glw/core/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTmp(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestOptionsLoadFile(t *testing.T) {
	filename := writeTmp(t, "glw.toml", `
width = 320
height = 200
output = "out.tiff"
fontsize = 0.0
clicks = ["1,2", "3, 4"]
`)
	opt := DefaultOptions()
	require.NoError(t, opt.LoadFile(filename))

	assert.Equal(t, 320, opt.Width)
	assert.Equal(t, 200, opt.Height)
	assert.Equal(t, float64(0), opt.FontSize)
	assert.True(t, opt.Dump) // default kept
	assert.Equal(t, preview.FormatTIFF, opt.OutputFormat())

	points, err := opt.Clicks.Points()
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{1, 2}, {3, 4}}, points)
}

func TestOptionsLoadFileErrors(t *testing.T) {
	opt := DefaultOptions()
	assert.Error(t, opt.LoadFile(writeTmp(t, "a.toml", "bogus = 1\n")))
	assert.Error(t, opt.LoadFile(writeTmp(t, "b.toml", "width = \"wide\"\n")))
	assert.Error(t, opt.LoadFile(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOptionsValidate(t *testing.T) {
	valid := func() *Options {
		opt := DefaultOptions()
		opt.Filename = "tree.yaml"
		return opt
	}
	require.NoError(t, valid().Validate())

	opt := valid()
	opt.Width = 0
	assert.Error(t, opt.Validate())

	opt = valid()
	opt.Format = "gif"
	assert.Error(t, opt.Validate())

	opt = valid()
	opt.FontSize = -1
	assert.Error(t, opt.Validate())

	opt = valid()
	opt.Clicks = ClicksOpt{"1;2"}
	assert.Error(t, opt.Validate())

	opt = valid()
	opt.Filename = ""
	assert.Error(t, opt.Validate())
}

func TestOptionsFormat(t *testing.T) {
	opt := DefaultOptions()
	assert.Equal(t, preview.FormatPNG, opt.OutputFormat())
	opt.Output = "a.bmp"
	assert.Equal(t, preview.FormatBMP, opt.OutputFormat())
	opt.Format = "png"
	assert.Equal(t, preview.FormatPNG, opt.OutputFormat())
}

func TestClicksFlag(t *testing.T) {
	opt := DefaultOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&opt.Clicks, "click", "")
	require.NoError(t, fs.Parse([]string{"-click", "10,20", "-click=5,6"}))
	assert.Equal(t, "10,20 5,6", opt.Clicks.String())

	assert.Error(t, opt.Clicks.Set("x,1"))
	assert.Error(t, opt.Clicks.Set("1"))
	assert.Len(t, opt.Clicks, 2)
}
