package insist

import "time"

// Op names a checking operation.
type Op string

const (
	OpArgs   Op = "args"
	OpOfType Op = "ofType"
	OpIsType Op = "isType"
)

// Event describes one completed check.
type Event struct {
	Op       Op
	Err      error
	Duration time.Duration
}

// OK reports whether the check passed.
func (e Event) OK() bool { return e.Err == nil }

// Hooks observe checks. Disabled OfType and IsType calls are not reported.
type Hooks struct {
	OnCheck func(e Event)
}
