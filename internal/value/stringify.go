package value

// stringifyCycle renders v's JSON-ish display form, tracking
// container identities already on the current path so a
// self-referential Array/Object serializes its back-reference as the
// "[Circular Reference]" sentinel instead of looping forever.
func stringifyCycle(v Value, visited map[any]bool) string {
	switch t := v.(type) {
	case *Array:
		if visited[t] {
			return "[Circular Reference]"
		}
		visited[t] = true
		s := stringifyArray(t, visited)
		delete(visited, t)
		return s
	case *Object:
		if visited[t] {
			return "[Circular Reference]"
		}
		visited[t] = true
		s := stringifyObject(t, visited)
		delete(visited, t)
		return s
	case *Set:
		if visited[t] {
			return "[Circular Reference]"
		}
		visited[t] = true
		parts := make([]string, len(t.items))
		for i, item := range t.items {
			parts[i] = stringifyCycle(item, visited)
		}
		delete(visited, t)
		out := "{"
		for i, p := range parts {
			if i > 0 {
				out += ", "
			}
			out += p
		}
		return out + "}"
	case *PriorityQueue:
		if visited[t] {
			return "[Circular Reference]"
		}
		return "PriorityQueue(size=" + Number(t.Size()).String() + ")"
	default:
		return v.String()
	}
}

// Stringify is the exported entry point builtins use to render a
// Value for display/debugging (print, to-string), with cycle
// protection applied from a fresh path.
func Stringify(v Value) string {
	return stringifyCycle(v, make(map[any]bool))
}
