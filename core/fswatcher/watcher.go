package fswatcher

import (
	"path/filepath"
	"strings"
)

// Events channel carries *Event and error values, and is closed when the watcher is closed.
type Watcher interface {
	Add(name string) error
	Events() <-chan interface{}
	Close() error
}

//----------

type Event struct {
	Op      Op
	Name    string
	SubName string
}

func (ev *Event) JoinNames() string {
	return filepath.Join(ev.Name, ev.SubName)
}

//----------

type Op uint8

const (
	Create Op = 1 << iota
	Modify    // write, truncate
	Remove
	Rename
)

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }

func (op Op) String() string {
	names := []string{"create", "modify", "remove", "rename"}
	u := []string{}
	for i, n := range names {
		if op.HasAny(1 << uint(i)) {
			u = append(u, n)
		}
	}
	return strings.Join(u, "|")
}
