package fswatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvent(t *testing.T, w Watcher, fn func(*Event) bool) {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case <-timeout:
			t.Fatal("event timeout")
		case ev := <-w.Events():
			if err, ok := ev.(error); ok {
				t.Fatal(err)
			}
			if fn(ev.(*Event)) {
				return
			}
		}
	}
}

func mustNew(t *testing.T) Watcher {
	t.Helper()
	w, err := NewFsnWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w
}

//----------

func TestFsWatcherCreate(t *testing.T) {
	dir := t.TempDir()
	w := mustNew(t)
	require.NoError(t, w.Add(dir))

	file1 := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(file1, []byte("class: dummy\n"), 0644))

	readEvent(t, w, func(ev *Event) bool {
		return ev.JoinNames() == file1 && ev.Op.HasAny(Create)
	})
}

func TestFsWatcherModify(t *testing.T) {
	dir := t.TempDir()
	file1 := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(file1, []byte("a"), 0644))

	w := mustNew(t)
	require.NoError(t, w.Add(file1))

	require.NoError(t, os.WriteFile(file1, []byte("b"), 0644))
	readEvent(t, w, func(ev *Event) bool {
		return ev.Name == file1 && ev.Op.HasAny(Modify)
	})
}

func TestFsWatcherAddMissing(t *testing.T) {
	w := mustNew(t)
	err := w.Add(filepath.Join(t.TempDir(), "nope", "nope"))
	assert.Error(t, err)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "create|rename", (Create | Rename).String())
	assert.Equal(t, "", Op(0).String())
}

//----------

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	file1 := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(file1, []byte("a"), 0644))

	w := mustNew(t)
	fw, err := NewFileWatcher(w, file1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func(err error) {
			if err == nil {
				changes <- struct{}{}
			}
		})
	}()

	// other files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	// replace the file the way editors do
	tmp := filepath.Join(dir, "tree.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("b"), 0644))
	require.NoError(t, os.Rename(tmp, file1))

	select {
	case <-changes:
	case <-ctx.Done():
		t.Fatal("change not seen")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestConvertEvent(t *testing.T) {
	ev, ok := convertEvent(fsnotify.Event{Name: "/a/b/tree.yaml", Op: fsnotify.Create | fsnotify.Write})
	require.True(t, ok)
	assert.Equal(t, Create|Modify, ev.Op)
	assert.Equal(t, "/a/b", ev.Name)
	assert.Equal(t, "tree.yaml", ev.SubName)
	assert.Equal(t, "/a/b/tree.yaml", ev.JoinNames())

	ev, ok = convertEvent(fsnotify.Event{Name: "/a/tree.yaml", Op: fsnotify.Rename})
	require.True(t, ok)
	assert.Equal(t, &Event{Op: Rename, Name: "/a/tree.yaml"}, ev)

	_, ok = convertEvent(fsnotify.Event{Name: "/a/tree.yaml", Op: fsnotify.Chmod})
	assert.False(t, ok)
}

func TestFileWatcherMatches(t *testing.T) {
	fw := &FileWatcher{name: "/a/tree.yaml"}
	assert.True(t, fw.matches(&Event{Op: Create, Name: "/a", SubName: "tree.yaml"}))
	assert.True(t, fw.matches(&Event{Op: Modify, Name: "/a/tree.yaml"}))
	assert.False(t, fw.matches(&Event{Op: Remove, Name: "/a/tree.yaml"}))
	assert.False(t, fw.matches(&Event{Op: Modify, Name: "/a/other.yaml"}))
}

func TestFsWatcherCloseUnread(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFsnWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Add(dir))
	// an event pending with no reader must not keep the loop alive after close
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("a"), 0644))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Close())

	timeout := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("events channel not closed")
		}
	}
}
