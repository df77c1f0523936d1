package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zen-lang/zen/internal/value"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func registerText(r *Registry) {
	r.register("upper", "upper(s) -> String: Unicode-aware uppercase", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "upper: argument must be a string")
		}
		return value.NewString(upperCaser.String(string(s)))
	})

	r.register("lower", "lower(s) -> String: Unicode-aware lowercase", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "lower: argument must be a string")
		}
		return value.NewString(lowerCaser.String(string(s)))
	})

	r.register("trim", "trim(s) -> String: strips leading/trailing whitespace", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "trim: argument must be a string")
		}
		return value.NewString(strings.TrimSpace(string(s)))
	})

	r.register("contains", "contains(s, sub) -> Boolean", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "contains: first argument must be a string")
		}
		sub, ok := arg(args, 1).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "contains: second argument must be a string")
		}
		return value.NewBoolean(strings.Contains(string(s), string(sub)))
	})

	r.register("replace", "replace(s, old, new) -> String: replaces every occurrence", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "replace: first argument must be a string")
		}
		old, ok := arg(args, 1).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "replace: second argument must be a string")
		}
		nw, ok := arg(args, 2).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "replace: third argument must be a string")
		}
		return value.NewString(strings.ReplaceAll(string(s), string(old), string(nw)))
	})

	r.register("split", "split(s, sep) -> Array: substrings between separators", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "split: first argument must be a string")
		}
		sep, ok := arg(args, 1).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "split: second argument must be a string")
		}
		parts := strings.Split(string(s), string(sep))
		elems := make([]value.Value, len(parts))
		for i, part := range parts {
			elems[i] = value.NewString(part)
		}
		return value.NewArray(elems)
	})

	r.register("join", "join(array, sep) -> String: concatenates string elements with sep", func(args []value.Value) value.Value {
		arr, ok := arg(args, 0).(*value.Array)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "join: first argument must be an array")
		}
		sep, ok := arg(args, 1).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "join: second argument must be a string")
		}
		parts := make([]string, arr.Len())
		for i, e := range arr.Elements() {
			parts[i] = value.ToStringValue(e)
		}
		return value.NewString(strings.Join(parts, string(sep)))
	})

	r.register("substring", "substring(s, start, end?) -> String: byte-indexed slice, end defaults to len(s)", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "substring: first argument must be a string")
		}
		start, ok := arg(args, 1).(value.Number)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "substring: start must be a number")
		}
		end := value.NewNumber(float64(s.Len()))
		if len(args) > 2 {
			end = arg(args, 2)
		}
		e, ok := end.(value.Number)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "substring: end must be a number")
		}
		i, j := int(start), int(e)
		if i < 0 || j > s.Len() || i > j {
			return value.NewError(value.ErrBounds, "substring: index out of bounds")
		}
		return value.NewString(string(s)[i:j])
	})
}
