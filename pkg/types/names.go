package types

import (
	"reflect"
	"regexp"
	"runtime"
	"sort"
	"strings"
)

// Name returns the human readable name of a descriptor, as used in error
// messages. Union members are joined with " or ".
func Name(t Type) string {
	switch t := t.(type) {
	case undefinedType:
		return "undefined"
	case nullType:
		return "null"
	case Union:
		if len(t) == 0 {
			return "None"
		}
		names := make([]string, len(t))
		for i, member := range t {
			names[i] = Name(member)
		}
		return strings.Join(names, " or ")
	case *ArrayOfType:
		if t == nil {
			return "Invalid type"
		}
		return "Array<" + Name(t.Elem) + ">"
	case Primitive:
		if name, ok := primitiveNames[t]; ok {
			return name
		}
	case AnyType:
		return "Any"
	case *EnumType:
		if t != nil && t.Values != nil {
			return "Enum(" + strings.Join(enumKeys(t), ", ") + ")"
		}
	case *ClassType:
		if t != nil && t.T != nil {
			return typeName(t.T)
		}
	}
	return "Invalid type"
}

var primitiveNames = map[Primitive]string{
	String:   "String",
	Number:   "Number",
	Boolean:  "Boolean",
	Object:   "Object",
	Function: "Function",
}

func enumKeys(e *EnumType) []string {
	keys := make([]string, 0, len(e.Values))
	for k := range e.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NameOf returns the human readable name of a value's type.
//
// Sequences are named after their elements ("Array<String>", "Array(mixed)",
// "Array(empty)"), functions after their declaration, structs and other named
// types after their Go type, and primitives after their class.
func NameOf(v any) string {
	if IsUndefined(v) {
		return "undefined"
	}
	if IsNull(v) {
		return "null"
	}

	if rv, ok := sequence(v); ok {
		if rv.Len() == 0 {
			return "Array(empty)"
		}
		inner := ""
		for i := 0; i < rv.Len(); i++ {
			name := NameOf(rv.Index(i).Interface())
			if i > 0 && name != inner {
				return "Array(mixed)"
			}
			inner = name
		}
		return "Array<" + inner + ">"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return funcName(rv)
	}

	if p := primitiveOf(v); p != 0 {
		return primitiveNames[p]
	}

	// Boxed values and pointers to structs are named after what they point to.
	// A chain ending in a nil pointer points at null.
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}
	if name := rv.Type().Name(); name != "" {
		return name
	}
	return "Object"
}

// closureName matches the compiler's names for function literals, e.g.
// "pkg.Outer.func1" or "pkg.init.0.func2.3".
var closureName = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

func funcName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "Anonymous function"
	}
	full := fn.Name()
	if closureName.MatchString(full) {
		return "Anonymous function"
	}
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.LastIndex(full, "."); i >= 0 {
		full = full[i+1:]
	}
	if full == "" {
		return "Anonymous function"
	}
	return full
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
