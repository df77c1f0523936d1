package builtins

import "github.com/zen-lang/zen/internal/value"

// registerErrors exposes Error values to user code: construction,
// inspection, and cause chaining. All of these are transparent;
// receiving an Error argument is their whole point.
func registerErrors(r *Registry) {
	r.registerTransparent("error", "error(message) -> Error: a user-raised error", func(args []value.Value) value.Value {
		msg, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "error: message must be a string")
		}
		return value.NewError(value.ErrUser, string(msg))
	})

	r.registerTransparent("isError", "isError(v) -> Boolean", func(args []value.Value) value.Value {
		return value.NewBoolean(value.IsError(arg(args, 0)))
	})

	r.registerTransparent("errorCode", "errorCode(e) -> Number: the error's taxonomy code", func(args []value.Value) value.Value {
		e, ok := value.AsError(arg(args, 0))
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "errorCode: argument must be an error")
		}
		return value.NewNumber(float64(e.Code))
	})

	r.registerTransparent("errorMessage", "errorMessage(e) -> String", func(args []value.Value) value.Value {
		e, ok := value.AsError(arg(args, 0))
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "errorMessage: argument must be an error")
		}
		return value.NewString(e.Message)
	})

	r.registerTransparent("errorCause", "errorCause(e) -> Error|Null: the chained cause, if any", func(args []value.Value) value.Value {
		e, ok := value.AsError(arg(args, 0))
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "errorCause: argument must be an error")
		}
		if e.Cause == nil {
			return value.NullValue
		}
		return e.Cause.Retain()
	})

	r.registerTransparent("errorWrap", "errorWrap(message, cause) -> Error: a user error chaining cause", func(args []value.Value) value.Value {
		msg, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "errorWrap: message must be a string")
		}
		cause, ok := value.AsError(arg(args, 1))
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "errorWrap: cause must be an error")
		}
		cause.Retain()
		return value.Wrap(value.ErrUser, string(msg), cause)
	})
}
