// Package value implements zen's universal runtime Value: a
// reference-counted, tagged-variant type for every result the
// evaluator produces and every value the builtins consume.
package value

import "github.com/zen-lang/zen/internal/ast"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunction
	KindError
	KindSet
	KindPriorityQueue
)

// TypeOf returns the name the `type` builtin reports for a Kind.
func (k Kind) TypeOf() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindError:
		return "error"
	case KindSet:
		return "set"
	case KindPriorityQueue:
		return "priorityqueue"
	}
	return "unknown"
}

// Value is the universal runtime datum. Every node the evaluator
// visits produces one.
type Value interface {
	Kind() Kind
	String() string
	Truthy() bool

	// Retain increments the reference count (a no-op for primitive
	// variants) and returns the same Value for chaining.
	Retain() Value

	// Release decrements the reference count (a no-op for primitive
	// variants); at zero it recursively releases children.
	Release()
}

// Environment is the minimal surface a captured closure scope needs.
// Declared here (rather than importing package scope) to avoid an
// import cycle: scope.Scope implements this interface structurally.
type Environment interface {
	Get(name string) (Value, bool)
	Define(name string, v Value)
}

// Builtin is a native standard-library function: it takes the
// evaluated argument list and always returns a Value (an Error
// variant on failure, never a host panic). Declared here so package
// evaluator can depend on the registry shape without importing
// package builtins.
type Builtin func(args []Value) Value

// refCounted is embedded by every reference-typed variant (Array,
// Object, Function, Error, Set, PriorityQueue). Primitive variants
// (Null, Boolean, Number, String) do not embed it; their
// Retain/Release are no-ops.
//
// count tracks extra owners beyond the implicit one the constructor
// hands its caller: a freshly constructed value needs exactly one
// release to free, matching count's zero value.
type refCounted struct {
	count int
}

func (r *refCounted) retain() {
	r.count++
}

// release invokes onZero on the release call that brings the value to
// zero remaining owners, otherwise just records that one fewer owner
// is outstanding.
func (r *refCounted) release(onZero func()) {
	if r.count == 0 {
		onZero()
		return
	}
	r.count--
}

// FunctionDef is the AST payload a Function Value wraps. Declared as
// an alias here so package value need not re-export ast types at call
// sites.
type FunctionDef = ast.FunctionDefinition
