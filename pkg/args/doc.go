/*
Package args validates a function's received arguments against a declared
signature and shifts them into their declared positions.

A signature may mix required and optional slots (see types.IsOptional).
When fewer arguments than slots are received, Shift works out which slots
were omitted:

	got, err := args.Shift([]any{"a", "b"}, types.String, types.Optional(types.Number), types.String)
	// got == []any{"a", nil, "b"}

Omitted optional slots are nil in the result. Failures are one of
*DeclarationError, *CardinalityError or *MismatchError; use errors.Is with
ErrInvalidDeclaration, ErrCardinality, ErrTypeMismatch or ErrShiftAmbiguity
to classify them.

The matching is a greedy right-to-left scan, not a search over every
assignment. When a received value fits both a required slot and the run of
optional slots after it, and an earlier value can fill the required slot,
the value is left to the optional slot.
*/
package args
