package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zen-lang/zen/internal/value"
)

func lookup(t *testing.T, r *Registry, name string) value.Builtin {
	t.Helper()
	fn, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	return fn
}

// TestJSONStringifyCircularReference: a self-referential Object must
// render the "[Circular Reference]" sentinel instead of erroring or
// looping forever. (The plain to-string path is covered in package
// evaluator.)
func TestJSONStringifyCircularReference(t *testing.T) {
	r := New(&bytes.Buffer{})
	jsonStringify := lookup(t, r, "jsonStringify")

	obj := value.NewObject()
	obj.Set("k", obj.Retain())

	out := jsonStringify([]value.Value{obj})
	if value.IsError(out) {
		t.Fatalf("jsonStringify returned an error: %s", out.String())
	}
	s, ok := out.(value.Str)
	if !ok {
		t.Fatalf("jsonStringify did not return a String, got %#v", out)
	}
	if !strings.Contains(string(s), "[Circular Reference]") {
		t.Errorf("jsonStringify(cyclic object) = %q, want it to contain the cycle sentinel", s)
	}
}

// TestYAMLStringifyCircularReference is the YAML-family analogue of
// scenario 6: same cycle, same sentinel, different serializer.
func TestYAMLStringifyCircularReference(t *testing.T) {
	r := New(&bytes.Buffer{})
	yamlStringify := lookup(t, r, "yamlStringify")

	arr := value.NewArray(nil)
	arr.Push(arr.Retain())

	out := yamlStringify([]value.Value{arr})
	if value.IsError(out) {
		t.Fatalf("yamlStringify returned an error: %s", out.String())
	}
	s, ok := out.(value.Str)
	if !ok {
		t.Fatalf("yamlStringify did not return a String, got %#v", out)
	}
	if !strings.Contains(string(s), "Circular Reference") {
		t.Errorf("yamlStringify(cyclic array) = %q, want it to contain the cycle sentinel", s)
	}
}

// TestJSONRoundTrip checks parse(stringify(v)) == v for representable
// values (finite Number/Boolean/Null/String/Array/Object).
func TestJSONRoundTrip(t *testing.T) {
	r := New(&bytes.Buffer{})
	jsonStringify := lookup(t, r, "jsonStringify")
	jsonParse := lookup(t, r, "jsonParse")

	obj := value.NewObject()
	obj.Set("name", value.NewString("zen"))
	obj.Set("count", value.NewNumber(3))
	obj.Set("tags", value.NewArray([]value.Value{value.NewString("a"), value.NewString("b")}))
	obj.Set("ok", value.NewBoolean(true))
	obj.Set("nothing", value.NullValue)

	text := jsonStringify([]value.Value{obj})
	if value.IsError(text) {
		t.Fatalf("jsonStringify returned an error: %s", text.String())
	}

	parsed := jsonParse([]value.Value{text})
	if value.IsError(parsed) {
		t.Fatalf("jsonParse returned an error: %s", parsed.String())
	}
	if !value.Equal(obj, parsed) {
		t.Errorf("round-trip mismatch: original %s, parsed %s", obj.String(), parsed.String())
	}
}

// TestYAMLRoundTrip is the YAML-family analogue of the JSON round-trip
// property.
func TestYAMLRoundTrip(t *testing.T) {
	r := New(&bytes.Buffer{})
	yamlStringify := lookup(t, r, "yamlStringify")
	yamlParse := lookup(t, r, "yamlParse")

	arr := value.NewArray([]value.Value{
		value.NewNumber(1), value.NewNumber(2), value.NewString("three"),
	})

	text := yamlStringify([]value.Value{arr})
	if value.IsError(text) {
		t.Fatalf("yamlStringify returned an error: %s", text.String())
	}

	parsed := yamlParse([]value.Value{text})
	if value.IsError(parsed) {
		t.Fatalf("yamlParse returned an error: %s", parsed.String())
	}
	if !value.Equal(arr, parsed) {
		t.Errorf("round-trip mismatch: original %s, parsed %s", arr.String(), parsed.String())
	}
}

// TestJSONParseInvalidSyntax exercises the syntax-error branch
// jsonParse reports on malformed input.
func TestJSONParseInvalidSyntax(t *testing.T) {
	r := New(&bytes.Buffer{})
	jsonParse := lookup(t, r, "jsonParse")

	out := jsonParse([]value.Value{value.NewString("{not json")})
	if !value.IsError(out) {
		t.Errorf("jsonParse(invalid) = %#v, want an Error value", out)
	}
}
