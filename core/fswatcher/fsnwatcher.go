package fswatcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher backed by fsnotify. Chmod events are dropped.
type FsnWatcher struct {
	w      *fsnotify.Watcher
	events chan interface{}
	done   chan struct{}
}

func NewFsnWatcher() (*FsnWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FsnWatcher{
		w:      w0,
		events: make(chan interface{}),
		done:   make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

// Also releases the event loop if nobody is reading the events anymore.
func (w *FsnWatcher) Close() error {
	close(w.done)
	return w.w.Close()
}

func (w *FsnWatcher) Add(name string) error {
	return w.w.Add(name)
}

func (w *FsnWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FsnWatcher) eventLoop() {
	defer close(w.events)
	for {
		var v interface{}
		select {
		case <-w.done:
			return
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			v = err
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			ev2, ok := convertEvent(ev)
			if !ok {
				continue
			}
			v = ev2
		}
		select {
		case w.events <- v:
		case <-w.done:
			return
		}
	}
}

var fsnOps = []struct {
	from fsnotify.Op
	to   Op
}{
	{fsnotify.Create, Create},
	{fsnotify.Write, Modify},
	{fsnotify.Remove, Remove},
	{fsnotify.Rename, Rename},
}

// A created file is reported on its directory, with the file as the subname.
func convertEvent(ev fsnotify.Event) (*Event, bool) {
	var op Op
	for _, u := range fsnOps {
		if ev.Op.Has(u.from) {
			op.Add(u.to)
		}
	}
	if op == 0 {
		return nil, false
	}
	ev2 := &Event{Op: op, Name: ev.Name}
	if op.HasAny(Create) {
		dir, file := filepath.Split(ev.Name)
		ev2.Name, ev2.SubName = filepath.Clean(dir), file
	}
	return ev2, true
}
