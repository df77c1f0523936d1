package builtins

import (
	"fmt"
	"io"

	"github.com/zen-lang/zen/internal/value"
)

// registerPrint wires `print` to w. print always writes a trailing
// newline regardless of the argument's variant, and returns Null so
// the REPL's display path can suppress it.
func registerPrint(r *Registry, w io.Writer) {
	r.registerTransparent("print", "print(v) -> Null: writes the to-string form of v followed by a newline", func(args []value.Value) value.Value {
		fmt.Fprintln(w, value.ToStringValue(arg(args, 0)))
		return value.NullValue
	})
}
