package conslisp

import (
	"fmt"
	"sort"
)

// Env is one frame of lexical bindings. Frames are shared: every closure
// created in a frame keeps it alive, and child frames only ever point
// outward to their parent.
type Env struct {
	vars map[string]*Node
	env  *Env
}

// NewEnv creates a frame whose lookups fall back to parent. A nil parent
// makes a root frame.
func NewEnv(parent *Env) *Env {
	return &Env{
		vars: make(map[string]*Node),
		env:  parent,
	}
}

func (e *Env) Parent() *Env {
	return e.env
}

// Define binds name in this frame. A name can be bound only once per
// frame; child frames may shadow it.
func (e *Env) Define(name string, value *Node) error {
	if _, ok := e.vars[name]; ok {
		return fmt.Errorf("%w: '%s' is already defined", ErrDefinition, name)
	}
	e.vars[name] = value
	return nil
}

// Lookup walks the frame chain outward.
func (e *Env) Lookup(name string) (*Node, bool) {
	for curr := e; curr != nil; curr = curr.env {
		if v, ok := curr.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Env) Get(name string) (*Node, error) {
	v, ok := e.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' not found", ErrUnbound, name)
	}
	return v, nil
}

// Names lists the names bound directly in this frame, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
