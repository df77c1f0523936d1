package builtins

import "github.com/zen-lang/zen/internal/value"

// registerContainers exposes the opaque Set and PriorityQueue value
// kinds. The core treats both as reference-typed black boxes; these
// builtins are their entire language-visible surface.
func registerContainers(r *Registry) {
	r.register("newSet", "newSet() -> Set: an empty set", func(args []value.Value) value.Value {
		return value.NewSet()
	})

	r.register("setAdd", "setAdd(set, v) -> Set: inserts v if absent, returns the set", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(*value.Set)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "setAdd: first argument must be a set")
		}
		s.Add(arg(args, 1))
		return s
	})

	r.register("setHas", "setHas(set, v) -> Boolean: membership by structural equality", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(*value.Set)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "setHas: first argument must be a set")
		}
		return value.NewBoolean(s.Has(arg(args, 1)))
	})

	r.register("setItems", "setItems(set) -> Array: the members as an array", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(*value.Set)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "setItems: argument must be a set")
		}
		items := s.Items()
		elems := make([]value.Value, len(items))
		for i, item := range items {
			elems[i] = item.Retain()
		}
		return value.NewArray(elems)
	})

	r.register("newPriorityQueue", "newPriorityQueue() -> PriorityQueue: an empty min-priority queue", func(args []value.Value) value.Value {
		return value.NewPriorityQueue()
	})

	r.register("pqPush", "pqPush(pq, priority, v) -> PriorityQueue: inserts v at priority (lower dequeues first)", func(args []value.Value) value.Value {
		pq, ok := arg(args, 0).(*value.PriorityQueue)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "pqPush: first argument must be a priorityqueue")
		}
		prio, ok := arg(args, 1).(value.Number)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "pqPush: priority must be a number")
		}
		pq.Push(float64(prio), arg(args, 2))
		return pq
	})

	r.register("pqPop", "pqPop(pq) -> Value: removes and returns the lowest-priority item, Null if empty", func(args []value.Value) value.Value {
		pq, ok := arg(args, 0).(*value.PriorityQueue)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "pqPop: argument must be a priorityqueue")
		}
		v, ok := pq.Pop()
		if !ok {
			return value.NullValue
		}
		return v
	})

	r.register("pqSize", "pqSize(pq) -> Number: number of queued items", func(args []value.Value) value.Value {
		pq, ok := arg(args, 0).(*value.PriorityQueue)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "pqSize: argument must be a priorityqueue")
		}
		return value.NewNumber(float64(pq.Size()))
	})
}
