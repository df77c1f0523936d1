package value

import "testing"

func TestReleaseOnLastOwnerFreesChildren(t *testing.T) {
	inner := NewArray([]Value{NewNumber(1)})
	outer := NewArray([]Value{inner})

	outer.Release()
	if outer.Elements() != nil {
		t.Error("outer's elements should be released at zero owners")
	}
	if inner.Elements() != nil {
		t.Error("inner should be released recursively with its parent")
	}
}

func TestRetainDefersRelease(t *testing.T) {
	a := NewArray([]Value{NewNumber(1)})
	a.Retain()

	a.Release()
	if a.Elements() == nil {
		t.Fatal("a still has one owner; elements must survive the first Release")
	}
	a.Release()
	if a.Elements() != nil {
		t.Error("elements should be released once the last owner is gone")
	}
}

func TestSharedChildSurvivesOneParentsRelease(t *testing.T) {
	child := NewObject()
	child.Set("k", NewNumber(1))

	left := NewArray([]Value{child})
	right := NewArray([]Value{child.Retain()})

	left.Release()
	if _, ok := child.Get("k"); !ok {
		t.Fatal("child is still owned by right; left's release must not free it")
	}
	right.Release()
	if child.values != nil {
		t.Error("child should be freed once both parents are gone")
	}
}

func TestPrimitiveRetainReleaseAreNoOps(t *testing.T) {
	for _, v := range []Value{NullValue, NewBoolean(true), NewNumber(1), NewString("s")} {
		before := v.String()
		if got := v.Retain(); got != v {
			t.Errorf("Retain on %s should return the same value", v.Kind().TypeOf())
		}
		v.Release()
		if v.String() != before {
			t.Errorf("%s changed state after Release", v.Kind().TypeOf())
		}
	}
}

func TestErrorReleaseFreesCause(t *testing.T) {
	inner := NewError(ErrIO, "read failed")
	outer := Wrap(ErrUser, "load failed", inner)

	// inner's only owner was transferred into the wrap, so releasing
	// outer walks the cause chain; neither release may panic, and the
	// chain stays readable for identity comparison.
	outer.Release()
	if outer.Cause != inner {
		t.Error("cause pointer should remain intact for identity checks")
	}
}
