package fswatcher

import (
	"context"
	"path/filepath"
	"time"
)

// Watches one file through its directory, so that editors replacing the file (write to temp + rename) keep being seen. Bursts of events are merged.
type FileWatcher struct {
	w     Watcher
	name  string
	Delay time.Duration
}

func NewFileWatcher(w Watcher, name string) (*FileWatcher, error) {
	name = filepath.Clean(name)
	fw := &FileWatcher{w: w, name: name, Delay: 50 * time.Millisecond}
	if err := w.Add(filepath.Dir(name)); err != nil {
		return nil, err
	}
	return fw, nil
}

// Calls fn after each (merged) change of the file, and with the watcher errors. Returns when the context is done or the watcher is closed.
func (fw *FileWatcher) Run(ctx context.Context, fn func(err error)) error {
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer:
			timer = nil
			fn(nil)
		case ev, ok := <-fw.w.Events():
			if !ok {
				return nil
			}
			switch t := ev.(type) {
			case error:
				fn(t)
			case *Event:
				if fw.matches(t) && timer == nil {
					timer = time.After(fw.Delay)
				}
			}
		}
	}
}

// Removals are ignored, editors replacing the file also create it back.
const fileOps = Create | Modify | Rename

func (fw *FileWatcher) matches(ev *Event) bool {
	if !ev.Op.HasAny(fileOps) {
		return false
	}
	return ev.JoinNames() == fw.name || ev.Name == fw.name
}
