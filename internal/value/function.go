package value

// Function is a closure: a reference to its AST definition plus the
// scope active when it was defined. Calling it later still observes
// that scope's bindings, including later mutations (closure capture).
type Function struct {
	refCounted
	Def   *FunctionDef
	Scope Environment
}

// NewFunction wraps def with the scope active at definition time.
func NewFunction(def *FunctionDef, scope Environment) *Function {
	return &Function{Def: def, Scope: scope}
}

func (f *Function) Kind() Kind   { return KindFunction }
func (f *Function) Truthy() bool { return true }
func (f *Function) String() string {
	name := "<anonymous>"
	if f.Def != nil && f.Def.Name != nil {
		name = f.Def.Name.Value
	}
	return "function " + name + "(...)"
}

func (f *Function) Retain() Value {
	f.retain()
	return f
}

// Release drops the reference. Functions hold no Value children of
// their own (the captured scope owns its bindings independently), so
// there is nothing further to release here.
func (f *Function) Release() {
	f.release(func() {})
}
