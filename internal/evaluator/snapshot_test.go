package evaluator

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalSnapshots pins stdout for a set of end-to-end programs
// against a recorded baseline rather than a hand-written expected
// string per case.
func TestEvalSnapshots(t *testing.T) {
	scenarios := map[string]string{
		"arithmetic_and_print": "set x = 1 + 2\nprint(x)",
		"function_call":        "function sq(n) { return n * n }\nprint(sq(9))",
		// The counter increments with plain assignment, which writes
		// through to the captured n. `set n = n + 1` would define a
		// per-call shadow instead and print 1 twice; that behavior is
		// pinned by TestEvalSetInsideClosureShadowsOuterBinding.
		"closure_counter": `
function counter() {
	set n = 0
	function inc() {
		n = n + 1
		return n
	}
	return inc
}
set c = counter()
print(c())
print(c())
`,
		"for_over_array":          "set a = [10, 20, 30]\nfor x in a { print(x) }",
		"division_by_zero":        "set r = 1 / 0\nprint(r)",
		"json_stringify_circular": `set o = {}
o["k"] = o
print(jsonStringify(o))`,
		"upper_builtin": `print(upper("hello"))`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			stdout, _ := run(t, src)
			snaps.MatchSnapshot(t, name, stdout)
		})
	}
}
