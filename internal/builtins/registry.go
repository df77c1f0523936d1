// Package builtins implements zen's standard-library registry: an
// immutable name-to-native-function table the evaluator consults for
// any callee that is not a user-defined function.
package builtins

import (
	"io"
	"math/rand"

	"github.com/zen-lang/zen/internal/value"
)

// entry pairs a Builtin with the description the registry exposes
// alongside lookup.
type entry struct {
	fn          value.Builtin
	description string
}

// Registry is the lookup table the evaluator consults for any
// identifier that does not resolve to a variable or user function.
// The random source lives here, not at process scope, so independent
// interpreters don't share seed state and tests can reset it.
type Registry struct {
	entries map[string]entry
	rng     *rand.Rand
}

// New constructs a Registry with every builtin zen ships registered.
// w receives output from print.
func New(w io.Writer) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		rng:     rand.New(rand.NewSource(1)),
	}
	registerCore(r)
	registerCollections(r)
	registerContainers(r)
	registerText(r)
	registerMath(r)
	registerErrors(r)
	registerSerialization(r)
	registerPrint(r, w)
	return r
}

// register adds fn under name, wrapped so that an Error argument
// propagates out unchanged instead of being re-reported as an
// argument-type mismatch that would mask the original failure.
func (r *Registry) register(name, description string, fn value.Builtin) {
	r.entries[name] = entry{fn: propagateErrorArgs(fn), description: description}
}

// registerTransparent adds fn without the Error-propagation wrapper.
// Only builtins that inspect or display Error values directly (print,
// type, toString, toBoolean, the error family) register this way.
func (r *Registry) registerTransparent(name, description string, fn value.Builtin) {
	r.entries[name] = entry{fn: fn, description: description}
}

func propagateErrorArgs(fn value.Builtin) value.Builtin {
	return func(args []value.Value) value.Value {
		for _, a := range args {
			if value.IsError(a) {
				return a
			}
		}
		return fn(args)
	}
}

// Lookup returns the named builtin. ok is false if name is not
// registered.
func (r *Registry) Lookup(name string) (value.Builtin, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// Count returns the number of registered builtins.
func (r *Registry) Count() int { return len(r.entries) }
