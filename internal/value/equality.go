package value

// Equal implements deep structural equality:
// Null/Boolean/Number(NaN≠NaN)/String by value, Array/Object by
// pairwise deep comparison, Function/Error by identity.
func Equal(a, b Value) bool {
	return equal(a, b, nil)
}

// equal tracks the (a,b) pointer pairs already being compared on the
// current path so a mutually-cyclic Array/Object pair terminates
// (matching stringify's cycle-safety) instead of recursing forever.
func equal(a, b Value, seen map[[2]any]bool) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		// NaN != NaN.
		return float64(av) == float64(bv)
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.elements) != len(bv.elements) {
			return false
		}
		key := [2]any{av, bv}
		if seen == nil {
			seen = make(map[[2]any]bool)
		}
		if seen[key] {
			return true
		}
		seen[key] = true
		for i := range av.elements {
			if !equal(av.elements[i], bv.elements[i], seen) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.keys) != len(bv.keys) {
			return false
		}
		key := [2]any{av, bv}
		if seen == nil {
			seen = make(map[[2]any]bool)
		}
		if seen[key] {
			return true
		}
		seen[key] = true
		for _, k := range av.keys {
			bval, ok := bv.values[k]
			if !ok {
				return false
			}
			if !equal(av.values[k], bval, seen) {
				return false
			}
		}
		return true
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *Error:
		bv, ok := b.(*Error)
		return ok && av == bv
	case *Set:
		bv, ok := b.(*Set)
		return ok && av == bv
	case *PriorityQueue:
		bv, ok := b.(*PriorityQueue)
		return ok && av == bv
	}
	return false
}
