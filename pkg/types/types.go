package types

import (
	"reflect"
)

// Kind identifies the variant of a Type.
type Kind int

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindNull
	KindUndefined
	KindUnion
	KindArrayOf
	KindEnum
	KindAny
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindUnion:
		return "union"
	case KindArrayOf:
		return "array-of"
	case KindEnum:
		return "enum"
	case KindAny:
		return "any"
	case KindClass:
		return "class"
	default:
		return "invalid"
	}
}

// Type describes the acceptable runtime type (or set of types) for a slot.
// The set of implementations is closed; use the package level values and
// builders to obtain one.
type Type interface {
	// Kind returns the variant of the descriptor.
	Kind() Kind
	sealed()
}

// --- Primitives ---

// Primitive is a reference to one of the built-in value classes.
type Primitive int

const (
	String Primitive = iota + 1
	Number
	Boolean
	Object
	Function
)

func (Primitive) Kind() Kind { return KindPrimitive }
func (Primitive) sealed()    {}

func (p Primitive) valid() bool { return p >= String && p <= Function }

// --- Null and Undefined ---

type nullType struct{}

func (nullType) Kind() Kind { return KindNull }
func (nullType) sealed()    {}

type undefinedType struct{}

func (undefinedType) Kind() Kind { return KindUndefined }
func (undefinedType) sealed()    {}

var (
	// Null matches only a null value (nil).
	Null Type = nullType{}
	// Undefined matches only Undef. Any slot whose descriptor is, or contains,
	// Undefined may be omitted.
	Undefined Type = undefinedType{}
)

// --- Composites ---

// Union matches a value that satisfies at least one of its members.
// An empty union is invalid.
type Union []Type

func (Union) Kind() Kind { return KindUnion }
func (Union) sealed()    {}

// ArrayOfType matches a slice or array whose elements all satisfy Elem.
type ArrayOfType struct {
	Elem Type
}

func (*ArrayOfType) Kind() Kind { return KindArrayOf }
func (*ArrayOfType) sealed()    {}

// EnumType matches a value equal to one of the mapping's values.
// Keys only serve as names.
type EnumType struct {
	Values map[string]any
}

func (*EnumType) Kind() Kind { return KindEnum }
func (*EnumType) sealed()    {}

// AnyType is the wildcard descriptor.
type AnyType struct{}

func (AnyType) Kind() Kind { return KindAny }
func (AnyType) sealed()    {}

// ClassType matches values whose dynamic Go type is assignable to T.
type ClassType struct {
	T reflect.Type
}

func (*ClassType) Kind() Kind { return KindClass }
func (*ClassType) sealed()    {}

// --- Builders ---

// ArrayOf creates an array-of descriptor for elements of the given type.
func ArrayOf(elem Type) Type {
	return &ArrayOfType{Elem: elem}
}

// Nullable accepts t or null.
func Nullable(t Type) Type {
	return Union{t, Null}
}

// Optional accepts t, undefined or null, which makes the slot omittable.
func Optional(t Type) Type {
	return Union{t, Undefined, Null}
}

// Anything accepts every primitive class plus null, but not undefined.
func Anything() Type {
	return Union{Object, String, Number, Boolean, Null}
}

// Enum creates a descriptor matching any of the mapping's values.
func Enum(values map[string]any) Type {
	return &EnumType{Values: values}
}

// Any returns the wildcard descriptor.
func Any() Type {
	return AnyType{}
}

// Class creates a descriptor for the Go type t.
func Class(t reflect.Type) Type {
	return &ClassType{T: t}
}

// ClassOf creates a descriptor for the Go type T. Interface types match any
// value implementing them.
func ClassOf[T any]() Type {
	return &ClassType{T: reflect.TypeOf((*T)(nil)).Elem()}
}
