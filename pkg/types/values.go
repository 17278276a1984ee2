package types

import "reflect"

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undef is the undefined value: an argument that was explicitly passed as
// absent. It is distinct from nil, which is null.
var Undef any = undefinedValue{}

// IsUndefined reports whether v is Undef.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// IsNull reports whether v is null: nil or a nil pointer.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
