/*
Package insist checks at runtime that a function received the arguments it
declares, and shifts them into place when optional arguments were omitted.

# Concept

A function declares one type per parameter slot. Slots built with Optional
(or any union containing types.Undefined) may be omitted by the caller. Args
works out which slots the received values belong to and returns one value
per slot, nil for the omitted ones.

	func Greet(received ...any) (string, error) {
		v, err := insist.Args(received,
			types.String,
			insist.Optional(types.Number),
			types.String,
		)
		if err != nil {
			return "", err
		}
		greeting, _ := v[0].(string)
		name, _ := v[2].(string)
		return greeting + ", " + name, nil
	}

	Greet("hello", "world")    // v == []any{"hello", nil, "world"}
	Greet("hello", 3, "world") // v == []any{"hello", 3, "world"}

OfType and IsType are plain assertions. They can be switched off process
wide (Configure, or INSIST_DISABLED / NODE_ENV=production in the
environment) or per Checker. Args is never switched off since callers rely on
its result.

# Checkers

The package level functions use a shared default Checker. Build your own to
capture a configuration explicitly:

	c := insist.New(insist.WithDisabled(false), insist.WithLogger(logger))
	if err := c.OfType(v, insist.ArrayOf(types.String)); err != nil {
		return err
	}

# Stripping assertions

Package remover deletes assertion calls from generated JavaScript bundles,
keeping calls whose result is used.
*/
package insist
