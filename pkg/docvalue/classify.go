package docvalue

import (
	"encoding/json"
	"math"
	"reflect"
)

// Classify maps any Go value onto the document-store kind model. It is total:
// unknown or unsupported types classify as KindForbidden, never an error.
func Classify(v any) Kind {
	_, kind := Resolve(v)
	return kind
}

// Resolve classifies v and returns it in normalized form: pointers are
// dereferenced, typed slices become []any, and string-keyed typed maps become
// map[string]any. The common JSON-decoded shapes (nil, bool, float64, string,
// []any, map[string]any) resolve without reflection; the reflect fallback only
// runs for less common concrete types.
func Resolve(v any) (any, Kind) {
	switch t := v.(type) {
	case nil:
		return nil, KindNull
	case bool:
		return t, KindBool
	case string:
		return t, KindString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return t, KindNumber
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return t, KindForbidden
		}
		return t, KindNumber
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return t, KindForbidden
		}
		return t, KindNumber
	case json.Number:
		f, err := t.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return t, KindForbidden
		}
		return t, KindNumber
	case undefinedMarker:
		return t, KindForbidden
	case []byte:
		// Binary blobs persist fine; the store treats them as opaque strings.
		return t, KindString
	case []any:
		return t, KindArray
	case map[string]any:
		return t, KindObject
	}
	return resolveReflect(v)
}

// resolveReflect handles concrete types outside the fast paths above: typed
// slices, typed string-keyed maps, and pointers. Everything else (funcs,
// channels, structs, complex numbers, non-string map keys) is Forbidden.
func resolveReflect(v any) (any, Kind) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, KindNull
		}
		return Resolve(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v, KindForbidden
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, KindObject
	default:
		return v, KindForbidden
	}
}

// DescribeForbidden returns the human-readable reason a Forbidden-classified
// value cannot be persisted. The strings appear verbatim in validation
// messages.
func DescribeForbidden(v any) string {
	if IsUndefined(v) {
		return "undefined value not allowed"
	}
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "non-finite number not allowed"
		}
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "non-finite number not allowed"
		}
	case json.Number:
		return "non-finite number not allowed"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func:
		return "function value not allowed"
	case reflect.Chan:
		return "channel value not allowed"
	default:
		return "unsupported value type not allowed"
	}
}

// IsCallable reports whether v is an executable value. The sanitizer uses
// this to keep a dedicated counter for stripped functions.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}

// Identity returns a stable identity for container values (slices and maps)
// used by the cycle guard, and whether the value carries one. Empty
// containers report no identity: they cannot participate in a cycle and their
// zero-length data pointers may collide.
func Identity(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.Len() == 0 {
			return 0, false
		}
		return rv.Pointer(), true
	default:
		return 0, false
	}
}
