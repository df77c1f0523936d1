package builtins

import "github.com/zen-lang/zen/internal/value"

func registerCollections(r *Registry) {
	r.register("push", "push(array, v) -> Array: appends v, returns the array", func(args []value.Value) value.Value {
		arr, ok := arg(args, 0).(*value.Array)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "push: first argument must be an array")
		}
		arr.Push(arg(args, 1))
		return arr
	})

	r.register("pop", "pop(array) -> Value: removes and returns the last element, Null if empty", func(args []value.Value) value.Value {
		arr, ok := arg(args, 0).(*value.Array)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "pop: argument must be an array")
		}
		v, ok := arr.Pop()
		if !ok {
			return value.NullValue
		}
		return v
	})

	r.register("keys", "keys(object) -> Array: the object's keys, insertion order", func(args []value.Value) value.Value {
		obj, ok := arg(args, 0).(*value.Object)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "keys: argument must be an object")
		}
		names := obj.Keys()
		elems := make([]value.Value, len(names))
		for i, k := range names {
			elems[i] = value.NewString(k)
		}
		return value.NewArray(elems)
	})
}
