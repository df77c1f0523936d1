// Package scope implements the nested symbol table the evaluator
// walks against: a parent-pointer chain of frames, each holding
// variable bindings and user-defined functions.
package scope

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/value"
)

// Scope is one frame of the lexical binding chain. A Function Value
// retains its defining Scope by strong reference (Go's GC keeps it
// alive for as long as the closure does); see MarkCaptured for how
// Pop avoids releasing a scope a closure still needs.
type Scope struct {
	vars      map[string]value.Value
	functions map[string]*ast.FunctionDefinition
	parent    *Scope
	captured  bool
}

// New creates a root scope with no parent: the global scope.
func New() *Scope {
	return &Scope{
		vars:      make(map[string]value.Value),
		functions: make(map[string]*ast.FunctionDefinition),
	}
}

// Push creates a new frame enclosed by s. Pair every Push with a Pop
// on all exit paths (normal return, propagated error, sentinel
// outcome); callers typically `defer child.Pop()` immediately.
func (s *Scope) Push() *Scope {
	return &Scope{
		vars:      make(map[string]value.Value),
		functions: make(map[string]*ast.FunctionDefinition),
		parent:    s,
	}
}

// Pop releases every Value binding held directly by this frame. It
// does not affect the parent chain. If MarkCaptured was called on s
// (a closure wrapped this exact frame before Pop), Pop is a no-op:
// the frame and its bindings must outlive the call that created it,
// and Go's GC reclaims it once the capturing Function is gone.
func (s *Scope) Pop() {
	if s.captured {
		return
	}
	for _, v := range s.vars {
		v.Release()
	}
	s.vars = nil
}

// MarkCaptured records that a closure now holds s by reference (via a
// Function Value's Scope field), so a later Pop must leave s's
// bindings intact instead of releasing them. Lookup from the closure
// walks the whole parent chain, so every enclosing frame is marked
// too, since a doubly-nested closure still needs its grandparent's
// bindings after that call returns.
func (s *Scope) MarkCaptured() {
	for frame := s; frame != nil && !frame.captured; frame = frame.parent {
		frame.captured = true
	}
}

// Define creates or overwrites name in this frame, taking ownership of
// the caller's reference to v. If name already held a value in this
// frame, it is released first.
func (s *Scope) Define(name string, v value.Value) {
	if old, ok := s.vars[name]; ok {
		old.Release()
	}
	s.vars[name] = v
}

// Get looks up name, walking outward through parent frames. Returns
// a borrowed reference (caller must Retain if it outlives the frame).
func (s *Scope) Get(name string) (value.Value, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign writes v to the frame where name is already bound, releasing
// the previous value there. Reports false if name is not bound
// anywhere in the chain; callers treat that as an undefined-variable
// error (assignment never creates a binding, only `set` does).
func (s *Scope) Assign(name string, v value.Value) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if old, ok := frame.vars[name]; ok {
			old.Release()
			frame.vars[name] = v
			return true
		}
	}
	return false
}

// DefineFunction records a user function definition in this frame.
func (s *Scope) DefineFunction(name string, def *ast.FunctionDefinition) {
	s.functions[name] = def
}

// LookupFunction walks outward for a user function definition. The
// returned Scope is the frame the definition was recorded in: the
// function's lexical home, which callers use as the parent of the
// call frame (not the call site's scope).
func (s *Scope) LookupFunction(name string) (*ast.FunctionDefinition, *Scope, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if def, ok := frame.functions[name]; ok {
			return def, frame, true
		}
	}
	return nil, nil, false
}
