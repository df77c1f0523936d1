package builtins

import (
	"math"

	"github.com/zen-lang/zen/internal/value"
)

func number(args []value.Value, i int, fn string) (float64, *value.Error) {
	n, ok := arg(args, i).(value.Number)
	if !ok {
		return 0, value.NewError(value.ErrTypeMismatch, fn+": argument must be a number")
	}
	return float64(n), nil
}

func registerMath(r *Registry) {
	r.register("abs", "abs(n) -> Number", func(args []value.Value) value.Value {
		n, err := number(args, 0, "abs")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Abs(n))
	})

	r.register("floor", "floor(n) -> Number", func(args []value.Value) value.Value {
		n, err := number(args, 0, "floor")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Floor(n))
	})

	r.register("ceil", "ceil(n) -> Number", func(args []value.Value) value.Value {
		n, err := number(args, 0, "ceil")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Ceil(n))
	})

	r.register("round", "round(n) -> Number: rounds half away from zero", func(args []value.Value) value.Value {
		n, err := number(args, 0, "round")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Round(n))
	})

	r.register("sqrt", "sqrt(n) -> Number: n must be non-negative", func(args []value.Value) value.Value {
		n, err := number(args, 0, "sqrt")
		if err != nil {
			return err
		}
		if n < 0 {
			return value.NewError(value.ErrArithmeticFault, "sqrt: negative argument")
		}
		return value.NewNumber(math.Sqrt(n))
	})

	r.register("log", "log(n) -> Number: natural logarithm, n must be positive", func(args []value.Value) value.Value {
		n, err := number(args, 0, "log")
		if err != nil {
			return err
		}
		if n <= 0 {
			return value.NewError(value.ErrArithmeticFault, "log: non-positive argument")
		}
		return value.NewNumber(math.Log(n))
	})

	r.register("pow", "pow(base, exp) -> Number", func(args []value.Value) value.Value {
		base, err := number(args, 0, "pow")
		if err != nil {
			return err
		}
		exp, err := number(args, 1, "pow")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Pow(base, exp))
	})

	r.register("min", "min(a, b) -> Number", func(args []value.Value) value.Value {
		a, err := number(args, 0, "min")
		if err != nil {
			return err
		}
		b, err := number(args, 1, "min")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Min(a, b))
	})

	r.register("max", "max(a, b) -> Number", func(args []value.Value) value.Value {
		a, err := number(args, 0, "max")
		if err != nil {
			return err
		}
		b, err := number(args, 1, "max")
		if err != nil {
			return err
		}
		return value.NewNumber(math.Max(a, b))
	})

	// The random source is per-Registry state, not a process-wide
	// global, so separate interpreter instances stay independent.
	r.register("random", "random() -> Number: uniform in [0, 1)", func(args []value.Value) value.Value {
		return value.NewNumber(r.rng.Float64())
	})

	r.register("randomSeed", "randomSeed(n) -> Null: reseeds this interpreter's random source", func(args []value.Value) value.Value {
		n, err := number(args, 0, "randomSeed")
		if err != nil {
			return err
		}
		r.rng.Seed(int64(n))
		return value.NullValue
	})
}
