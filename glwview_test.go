package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClasses(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), []string{"-classes"}, out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "container_x\n")
	assert.Contains(t, out.String(), "backdrop\n")
}

func TestRunUsage(t *testing.T) {
	errOut := &bytes.Buffer{}
	err := run(context.Background(), nil, &bytes.Buffer{}, errOut)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, errOut.String(), "usage: glwview")
}

func TestRunConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(tree, []byte("class: container_x\nchildren:\n  - class: dummy\n    name: a\n"), 0o644))
	cfg := filepath.Join(dir, "glw.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("width = 10\nheight = 20\nfontsize = 0.0\n"), 0o644))

	// flag given explicitly wins over the config file
	out := &bytes.Buffer{}
	args := []string{"-config", cfg, "-width=30", tree}
	require.NoError(t, run(context.Background(), args, out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "a dummy")
	assert.Contains(t, out.String(), "size=30x20")
}

func TestRunBadConfig(t *testing.T) {
	err := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "nope.toml"), "x.yaml"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunBadFormat(t *testing.T) {
	err := run(context.Background(), []string{"-format", "gif", "x.yaml"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}
