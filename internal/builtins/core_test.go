package builtins

import (
	"bytes"
	"math"
	"testing"

	"github.com/zen-lang/zen/internal/value"
)

func TestLenAcrossKinds(t *testing.T) {
	r := New(&bytes.Buffer{})
	lenFn := lookup(t, r, "len")

	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2)})
	obj := value.NewObject()
	obj.Set("k", value.NullValue)
	set := value.NewSet()
	set.Add(value.NewNumber(1))

	cases := []struct {
		in   value.Value
		want float64
	}{
		{value.NewString("hello"), 5},
		{arr, 2},
		{obj, 1},
		{set, 1},
	}
	for _, tc := range cases {
		got := lenFn([]value.Value{tc.in})
		if float64(got.(value.Number)) != tc.want {
			t.Errorf("len(%s) = %s, want %v", tc.in.Kind().TypeOf(), got.String(), tc.want)
		}
	}

	if out := lenFn([]value.Value{value.NewNumber(5)}); !value.IsError(out) {
		t.Errorf("len(number) = %#v, want a type-mismatch Error", out)
	}
}

func TestTypeNames(t *testing.T) {
	r := New(&bytes.Buffer{})
	typeFn := lookup(t, r, "type")

	cases := []struct {
		in   value.Value
		want string
	}{
		{value.NullValue, "null"},
		{value.NewBoolean(true), "boolean"},
		{value.NewNumber(1), "number"},
		{value.NewString(""), "string"},
		{value.NewArray(nil), "array"},
		{value.NewObject(), "object"},
		{value.NewError(value.ErrUser, "x"), "error"},
	}
	for _, tc := range cases {
		if got := typeFn([]value.Value{tc.in}); got.String() != tc.want {
			t.Errorf("type = %q, want %q", got.String(), tc.want)
		}
	}
}

func TestParseIntRadixes(t *testing.T) {
	r := New(&bytes.Buffer{})
	parseInt := lookup(t, r, "parseInt")

	cases := []struct {
		s     string
		radix float64
		want  float64
	}{
		{"ff", 16, 255},
		{"101", 2, 5},
		{"777", 8, 511},
		{"z", 36, 35},
		{"42", 10, 42},
	}
	for _, tc := range cases {
		got := parseInt([]value.Value{value.NewString(tc.s), value.NewNumber(tc.radix)})
		if value.IsError(got) {
			t.Errorf("parseInt(%q, %v) errored: %s", tc.s, tc.radix, got.String())
			continue
		}
		if float64(got.(value.Number)) != tc.want {
			t.Errorf("parseInt(%q, %v) = %s, want %v", tc.s, tc.radix, got.String(), tc.want)
		}
	}

	if out := parseInt([]value.Value{value.NewString("12")}); float64(out.(value.Number)) != 12 {
		t.Errorf("parseInt default radix = %s, want 12", out.String())
	}
	if out := parseInt([]value.Value{value.NewString("xyz"), value.NewNumber(10)}); !value.IsError(out) {
		t.Errorf("parseInt(xyz, 10) = %#v, want an Error", out)
	}
	if out := parseInt([]value.Value{value.NewString("1"), value.NewNumber(1)}); !value.IsError(out) {
		t.Errorf("parseInt with radix 1 = %#v, want an Error", out)
	}
}

func TestIsNaNIsInfinite(t *testing.T) {
	r := New(&bytes.Buffer{})
	isNaN := lookup(t, r, "isNaN")
	isInfinite := lookup(t, r, "isInfinite")

	if got := isNaN([]value.Value{value.NewNumber(math.NaN())}); !got.Truthy() {
		t.Error("isNaN(NaN) = false, want true")
	}
	if got := isNaN([]value.Value{value.NewNumber(1)}); got.Truthy() {
		t.Error("isNaN(1) = true, want false")
	}
	if got := isInfinite([]value.Value{value.NewNumber(math.Inf(-1))}); !got.Truthy() {
		t.Error("isInfinite(-Inf) = false, want true")
	}
	if got := isInfinite([]value.Value{value.NewNumber(0)}); got.Truthy() {
		t.Error("isInfinite(0) = true, want false")
	}
}

func TestToNumberConversions(t *testing.T) {
	r := New(&bytes.Buffer{})
	toNumber := lookup(t, r, "toNumber")

	cases := []struct {
		in   value.Value
		want float64
	}{
		{value.NullValue, 0},
		{value.NewBoolean(true), 1},
		{value.NewString("3.5"), 3.5},
		{value.NewString("0x10"), 16},
		{value.NewString("0b101"), 5},
		{value.NewString("-2e2"), -200},
	}
	for _, tc := range cases {
		got := toNumber([]value.Value{tc.in})
		if float64(got.(value.Number)) != tc.want {
			t.Errorf("toNumber(%s) = %s, want %v", tc.in.String(), got.String(), tc.want)
		}
	}

	got := toNumber([]value.Value{value.NewString("not a number")})
	if !math.IsNaN(float64(got.(value.Number))) {
		t.Errorf("toNumber(garbage) = %s, want NaN", got.String())
	}
}
