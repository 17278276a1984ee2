// Package types defines the descriptors used to check runtime argument values.
//
// A descriptor is a value of the sealed interface Type. The supported kinds form
// a closed set: primitives (String, Number, Boolean, Object, Function), Null,
// Undefined (marks a slot as omittable), unions, array-of, enums, the Any
// wildcard and Go class references.
//
// Basic usage:
//
//	sig := types.Signature{types.String, types.Optional(types.Number), types.String}
//
//	types.IsOf("hello", types.String)              // true
//	types.IsOf([]any{1, 2}, types.ArrayOf(types.Number)) // true
//	types.Name(types.Optional(types.Number))        // "Number or undefined or null"
//
// Descriptors can also be written as text, which is how the CLI, the config
// file and the HTTP API accept them:
//
//	t, err := types.Parse("[String]|Number?")
//
// JavaScript distinguishes null from undefined. Here a Go nil (or a nil
// pointer) is null and the sentinel Undef is undefined.
package types
