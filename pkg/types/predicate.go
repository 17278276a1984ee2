package types

import (
	"encoding/json"
	"reflect"
)

// IsValid reports whether t is a well formed descriptor.
// Null and Undefined are always valid; a union must be non-empty with valid
// members; an array-of is valid iff its element type is.
func IsValid(t Type) bool {
	switch t := t.(type) {
	case nullType, undefinedType, AnyType:
		return true
	case Primitive:
		return t.valid()
	case Union:
		if len(t) == 0 {
			return false
		}
		for _, member := range t {
			if !IsValid(member) {
				return false
			}
		}
		return true
	case *ArrayOfType:
		return t != nil && IsValid(t.Elem)
	case *EnumType:
		return t != nil && t.Values != nil
	case *ClassType:
		return t != nil && t.T != nil
	default:
		return false
	}
}

// IsOptional reports whether a slot declared as t may be omitted:
// t is Undefined, or a union with an Undefined member.
func IsOptional(t Type) bool {
	switch t := t.(type) {
	case undefinedType:
		return true
	case Union:
		for _, member := range t {
			if IsOptional(member) {
				return true
			}
		}
	}
	return false
}

// IsOf reports whether v satisfies t.
func IsOf(v any, t Type) bool {
	switch t := t.(type) {
	case *ArrayOfType:
		if t == nil {
			return false
		}
		rv, ok := sequence(v)
		if !ok {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if !IsOf(rv.Index(i).Interface(), t.Elem) {
				return false
			}
		}
		return true
	case Union:
		for _, member := range t {
			if IsOf(v, member) {
				return true
			}
		}
		return false
	case nullType:
		return IsNull(v)
	case undefinedType:
		return IsUndefined(v)
	}

	if IsUndefined(v) || IsNull(v) {
		return false
	}

	switch t := t.(type) {
	case AnyType:
		return true
	case Primitive:
		if !t.valid() {
			return false
		}
		return primitiveOf(v) == t || (t == Object && isObject(v))
	case *EnumType:
		if t == nil {
			return false
		}
		for _, allowed := range t.Values {
			if strictEqual(v, allowed) {
				return true
			}
		}
		return false
	case *ClassType:
		if t == nil || t.T == nil {
			return false
		}
		return reflect.TypeOf(v).AssignableTo(t.T)
	default:
		return false
	}
}

func sequence(v any) (reflect.Value, bool) {
	if v == nil || IsUndefined(v) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

// primitiveOf returns the intrinsic primitive class of v, looking through
// pointers so boxed values classify like literals. It returns 0 for values
// that are not String, Number, Boolean or Function.
func primitiveOf(v any) Primitive {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0
		}
		rv = rv.Elem()
	}
	if rv.Type() == jsonNumberType {
		return Number
	}
	switch rv.Kind() {
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Func:
		if rv.IsNil() {
			return 0
		}
		return Function
	default:
		return 0
	}
}

// isObject mirrors `instanceof Object`: every non-null value that is not a
// literal primitive, including functions, sequences and boxed primitives.
func isObject(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Func,
		reflect.Chan, reflect.Pointer, reflect.UnsafePointer, reflect.Interface:
		return true
	default:
		return false
	}
}

// strictEqual compares two values the way === does. Numbers compare by value
// regardless of their Go representation.
func strictEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
