package builtins

import (
	"encoding/json"
	"strconv"

	goyaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/zen-lang/zen/internal/value"
)

func registerSerialization(r *Registry) {
	r.register("jsonStringify", "jsonStringify(v) -> String: JSON text for v", func(args []value.Value) value.Value {
		raw, err := jsonEncode(arg(args, 0), make(map[any]bool))
		if err != nil {
			return err
		}
		return value.NewString(raw)
	})

	r.register("jsonParse", "jsonParse(s) -> Value: parses JSON text into the equivalent zen Value", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "jsonParse: argument must be a string")
		}
		if !gjson.Valid(string(s)) {
			return value.NewError(value.ErrSyntax, "jsonParse: invalid JSON")
		}
		return gjsonToValue(gjson.Parse(string(s)))
	})

	r.register("yamlStringify", "yamlStringify(v) -> String: YAML text for v", func(args []value.Value) value.Value {
		native, err := valueToAny(arg(args, 0), make(map[any]bool))
		if err != nil {
			return err
		}
		out, marshalErr := goyaml.Marshal(native)
		if marshalErr != nil {
			return value.NewError(value.ErrUser, "yamlStringify: "+marshalErr.Error())
		}
		return value.NewString(string(out))
	})

	r.register("yamlParse", "yamlParse(s) -> Value: parses YAML text into the equivalent zen Value", func(args []value.Value) value.Value {
		s, ok := arg(args, 0).(value.Str)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "yamlParse: argument must be a string")
		}
		var native any
		if err := goyaml.Unmarshal([]byte(s), &native); err != nil {
			return value.NewError(value.ErrSyntax, "yamlParse: "+err.Error())
		}
		return anyToValue(native)
	})
}

// circularRefSentinel is the JSON string literal serialization emits
// in place of a container already on the current path, instead of
// erroring out or looping.
const circularRefSentinel = `"[Circular Reference]"`

// jsonEncode renders v as a raw JSON token, building arrays/objects
// incrementally with sjson.SetRaw. visited guards against the cycles
// that reference-typed Values can form; a revisit renders as the
// circularRefSentinel in place, matching value.Stringify's behavior.
func jsonEncode(v value.Value, visited map[any]bool) (string, *value.Error) {
	switch t := v.(type) {
	case value.Null:
		return "null", nil
	case value.Boolean:
		if bool(t) {
			return "true", nil
		}
		return "false", nil
	case value.Number:
		f := float64(t)
		if f != f || f > 1e308 || f < -1e308 { // NaN/out-of-range-ish guard; JSON has no such literals
			return strconv.Quote(t.String()), nil
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case value.Str:
		quoted, err := json.Marshal(string(t))
		if err != nil {
			return "", value.NewError(value.ErrUser, "jsonStringify: "+err.Error())
		}
		return string(quoted), nil
	case *value.Array:
		if visited[t] {
			return circularRefSentinel, nil
		}
		visited[t] = true
		defer delete(visited, t)

		doc := "[]"
		for i, e := range t.Elements() {
			raw, err := jsonEncode(e, visited)
			if err != nil {
				return "", err
			}
			var setErr error
			doc, setErr = sjson.SetRaw(doc, strconv.Itoa(i), raw)
			if setErr != nil {
				return "", value.NewError(value.ErrUser, "jsonStringify: "+setErr.Error())
			}
		}
		return doc, nil
	case *value.Object:
		if visited[t] {
			return circularRefSentinel, nil
		}
		visited[t] = true
		defer delete(visited, t)

		doc := "{}"
		for _, k := range t.Keys() {
			fv, _ := t.Get(k)
			raw, err := jsonEncode(fv, visited)
			if err != nil {
				return "", err
			}
			var setErr error
			// sjson paths treat '.' as nesting; object keys containing
			// one would need escaping this simple pass doesn't attempt.
			doc, setErr = sjson.SetRawOptions(doc, k, raw, &sjson.Options{Optimistic: true})
			if setErr != nil {
				return "", value.NewError(value.ErrUser, "jsonStringify: "+setErr.Error())
			}
		}
		return doc, nil
	default:
		return "", value.NewError(value.ErrTypeMismatch, "jsonStringify: unsupported variant "+v.Kind().TypeOf())
	}
}

func gjsonToValue(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.NullValue
	case gjson.False:
		return value.NewBoolean(false)
	case gjson.True:
		return value.NewBoolean(true)
	case gjson.Number:
		return value.NewNumber(r.Num)
	case gjson.String:
		return value.NewString(r.Str)
	default:
		if r.IsArray() {
			var elems []value.Value
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, gjsonToValue(v))
				return true
			})
			return value.NewArray(elems)
		}
		if r.IsObject() {
			obj := value.NewObject()
			r.ForEach(func(k, v gjson.Result) bool {
				obj.Set(k.String(), gjsonToValue(v))
				return true
			})
			return obj
		}
		return value.NullValue
	}
}

// valueToAny converts a Value into the plain Go value goccy/go-yaml
// marshals (map[string]any/[]any/primitives).
func valueToAny(v value.Value, visited map[any]bool) (any, *value.Error) {
	switch t := v.(type) {
	case value.Null:
		return nil, nil
	case value.Boolean:
		return bool(t), nil
	case value.Number:
		return float64(t), nil
	case value.Str:
		return string(t), nil
	case *value.Array:
		if visited[t] {
			return "[Circular Reference]", nil
		}
		visited[t] = true
		defer delete(visited, t)

		elems := t.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			conv, err := valueToAny(e, visited)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case *value.Object:
		if visited[t] {
			return "[Circular Reference]", nil
		}
		visited[t] = true
		defer delete(visited, t)

		out := make(map[string]any, t.Size())
		for _, k := range t.Keys() {
			fv, _ := t.Get(k)
			conv, err := valueToAny(fv, visited)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	default:
		return nil, value.NewError(value.ErrTypeMismatch, "yamlStringify: unsupported variant "+v.Kind().TypeOf())
	}
}

func anyToValue(x any) value.Value {
	switch t := x.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.NewBoolean(t)
	case string:
		return value.NewString(t)
	case int:
		return value.NewNumber(float64(t))
	case int64:
		return value.NewNumber(float64(t))
	case uint64:
		return value.NewNumber(float64(t))
	case float64:
		return value.NewNumber(t)
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = anyToValue(e)
		}
		return value.NewArray(elems)
	case map[string]any:
		obj := value.NewObject()
		for k, e := range t {
			obj.Set(k, anyToValue(e))
		}
		return obj
	case map[any]any:
		obj := value.NewObject()
		for k, e := range t {
			obj.Set(value.ToStringValue(anyToValue(k)), anyToValue(e))
		}
		return obj
	default:
		return value.NullValue
	}
}
