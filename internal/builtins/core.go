package builtins

import (
	"math"

	"github.com/zen-lang/zen/internal/value"
)

func arg(args []value.Value, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.NullValue
	}
	return args[i]
}

func registerCore(r *Registry) {
	r.register("len", "len(v) -> Number: byte length of a String, element count of an Array/Object/Set", func(args []value.Value) value.Value {
		switch v := arg(args, 0).(type) {
		case value.Str:
			return value.NewNumber(float64(v.Len()))
		case *value.Array:
			return value.NewNumber(float64(v.Len()))
		case *value.Object:
			return value.NewNumber(float64(v.Size()))
		case *value.Set:
			return value.NewNumber(float64(v.Size()))
		default:
			return value.NewError(value.ErrTypeMismatch, "len: unsupported argument type "+arg(args, 0).Kind().TypeOf())
		}
	})

	r.registerTransparent("type", "type(v) -> String: the type-of name for v", func(args []value.Value) value.Value {
		return value.NewString(arg(args, 0).Kind().TypeOf())
	})

	r.register("toNumber", "toNumber(v) -> Number", func(args []value.Value) value.Value {
		return value.NewNumber(value.ToNumber(arg(args, 0)))
	})

	r.registerTransparent("toString", "toString(v) -> String", func(args []value.Value) value.Value {
		return value.NewString(value.ToStringValue(arg(args, 0)))
	})

	r.registerTransparent("toBoolean", "toBoolean(v) -> Boolean", func(args []value.Value) value.Value {
		return value.NewBoolean(value.ToBoolean(arg(args, 0)))
	})

	r.register("parseInt", "parseInt(s, radix?) -> Number: integer in the given radix (2..36, default 10)", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "parseInt: first argument must be a string")
		}
		radix := 10
		if len(args) > 1 {
			n, ok := arg(args, 1).(value.Number)
			if !ok {
				return value.NewError(value.ErrTypeMismatch, "parseInt: radix must be a number")
			}
			radix = int(n)
		}
		n, ok := value.ParseIntRadix(string(s), radix)
		if !ok {
			return value.NewError(value.ErrArgumentMismatch, "parseInt: cannot parse "+string(s)+" in radix "+value.Number(float64(radix)).String())
		}
		return value.NewNumber(n)
	})

	r.register("isNaN", "isNaN(n) -> Boolean", func(args []value.Value) value.Value {
		n, ok := arg(args, 0).(value.Number)
		if !ok {
			return value.NewBoolean(false)
		}
		return value.NewBoolean(math.IsNaN(float64(n)))
	})

	r.register("isInfinite", "isInfinite(n) -> Boolean", func(args []value.Value) value.Value {
		n, ok := arg(args, 0).(value.Number)
		if !ok {
			return value.NewBoolean(false)
		}
		return value.NewBoolean(math.IsInf(float64(n), 0))
	})
}
