package value

import "strings"

// Object is an ordered, mutable, reference-counted mapping of unique
// string keys to Values. Insertion order is preserved for iteration
// and serialization; lookup is hash-based.
type Object struct {
	refCounted
	keys   []string
	values map[string]Value
}

// NewObject constructs an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

func (o *Object) Kind() Kind   { return KindObject }
func (o *Object) Truthy() bool { return len(o.keys) > 0 }

func (o *Object) Retain() Value {
	o.retain()
	return o
}

func (o *Object) Release() {
	o.release(func() {
		for _, v := range o.values {
			v.Release()
		}
		o.keys = nil
		o.values = nil
	})
}

func (o *Object) String() string {
	return stringifyCycle(o, make(map[any]bool))
}

// Size returns the number of keys.
func (o *Object) Size() int { return len(o.keys) }

// Get borrows the value at key (no retain). ok is false if absent.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set inserts or updates key, releasing any previous value. New keys
// are appended to preserve insertion order.
func (o *Object) Set(key string, v Value) {
	if old, ok := o.values[key]; ok {
		old.Release()
		o.values[key] = v
		return
	}
	o.keys = append(o.keys, key)
	o.values[key] = v
}

// Delete removes key if present, releasing its value.
func (o *Object) Delete(key string) {
	if old, ok := o.values[key]; ok {
		old.Release()
		delete(o.values, key)
		for i, k := range o.keys {
			if k == key {
				o.keys = append(o.keys[:i], o.keys[i+1:]...)
				break
			}
		}
	}
}

// Keys returns the keys in insertion order. Callers must not mutate
// the returned slice.
func (o *Object) Keys() []string { return o.keys }

func stringifyObject(o *Object, visited map[any]bool) string {
	parts := make([]string, len(o.keys))
	for i, k := range o.keys {
		parts[i] = "\"" + k + "\": " + stringifyCycle(o.values[k], visited)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
