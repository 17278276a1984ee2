package args

import (
	"github.com/aretw0/insist/pkg/types"
)

// Bounds validates every declared type and returns the number of required
// slots and the total slot count.
func Bounds(expected []types.Type) (required, total int, err error) {
	for i, t := range expected {
		if !types.IsValid(t) {
			return 0, 0, &DeclarationError{Index: i}
		}
	}
	required, total = types.Signature(expected).Bounds()
	return required, total, nil
}

// Check validates received positionally: it must have exactly one value per
// declared slot and every value must satisfy its slot.
func Check(received []any, expected ...types.Type) error {
	if _, _, err := Bounds(expected); err != nil {
		return err
	}
	if len(received) != len(expected) {
		return &CardinalityError{Min: len(expected), Max: len(expected), Got: len(received)}
	}
	return checkPositional(received, expected)
}

// Shift checks received against expected and returns a slice with one entry
// per declared slot, each received value moved to the slot it matched.
// Omitted optional slots are nil.
func Shift(received []any, expected ...types.Type) ([]any, error) {
	required, total, err := Bounds(expected)
	if err != nil {
		return nil, err
	}
	if len(received) < required || len(received) > total {
		return nil, &CardinalityError{Min: required, Max: total, Got: len(received)}
	}

	if len(received) == total {
		if err := checkPositional(received, expected); err != nil {
			return nil, err
		}
		out := make([]any, total)
		copy(out, received)
		return out, nil
	}

	out, err := newShifter(received, expected, total-required, true).run()
	if err == nil {
		return out, nil
	}
	// The coverage tie-break may hand an optional slot a value that a required
	// slot further left needed. The plain scan never does.
	return newShifter(received, expected, total-required, false).run()
}

func checkPositional(received []any, expected []types.Type) error {
	for i, t := range expected {
		if !types.IsOf(received[i], t) {
			return mismatch(received, expected, false)
		}
	}
	return nil
}

func mismatch(received []any, expected []types.Type, ambiguous bool) *MismatchError {
	err := &MismatchError{
		Expected:  types.Signature(expected).Names(),
		Received:  make([]string, len(received)),
		Ambiguous: ambiguous,
	}
	for i, v := range received {
		err.Received[i] = types.NameOf(v)
	}
	return err
}

// shifter holds the state of one right-to-left scan.
type shifter struct {
	received []any
	expected []types.Type
	result   []any

	// requiredBefore[i] is the number of required slots left of slot i.
	requiredBefore []int

	cur       int // next received value to consider, scanning backwards
	remaining int // optional slots that may still absorb skipped values

	pending []int // optional slot indices right of the current required slot
	skipped []int // received indices skipped while looking for the current required slot

	slotRuns  [][]int
	valueRuns [][]int

	// coverage enables leaveForOptional.
	coverage bool
}

func newShifter(received []any, expected []types.Type, optional int, coverage bool) *shifter {
	s := &shifter{
		received:       received,
		expected:       expected,
		result:         make([]any, len(expected)),
		requiredBefore: make([]int, len(expected)),
		cur:            len(received) - 1,
		remaining:      optional,
		coverage:       coverage,
	}
	count := 0
	for i, t := range expected {
		s.requiredBefore[i] = count
		if !types.IsOptional(t) {
			count++
		}
	}
	return s
}

func (s *shifter) run() ([]any, error) {
	// Required slots first, right to left.
	for i := len(s.expected) - 1; i >= 0; i-- {
		t := s.expected[i]
		if types.IsOptional(t) {
			s.pending = prepend(s.pending, i)
			continue
		}
		if err := s.fillRequired(i, t); err != nil {
			return nil, err
		}
	}

	// Whatever is left belongs to the optional slots before the first required one.
	for ; s.cur >= 0; s.cur-- {
		s.skipped = prepend(s.skipped, s.cur)
	}
	s.closeRun()

	if len(s.slotRuns) != len(s.valueRuns) {
		return nil, mismatch(s.received, s.expected, true)
	}
	for k, slots := range s.slotRuns {
		if err := s.fillOptional(slots, s.valueRuns[k]); err != nil {
			return nil, err
		}
	}
	return s.result, nil
}

func (s *shifter) fillRequired(i int, t types.Type) error {
	for {
		if s.cur < 0 {
			return mismatch(s.received, s.expected, false)
		}
		if types.IsOf(s.received[s.cur], t) && !s.leaveForOptional(i, t) {
			break
		}
		s.skipped = prepend(s.skipped, s.cur)
		s.cur--
		s.remaining--
		if s.cur < 0 || s.remaining < 0 {
			return mismatch(s.received, s.expected, false)
		}
	}
	s.closeRun()
	s.result[i] = s.received[s.cur]
	s.cur--
	return nil
}

// leaveForOptional decides whether the value under the cursor, which
// satisfies required slot i, should go to the pending optional run instead.
// That is the case when it fits one of those optional slots, the run still
// has room, and an earlier value within the skip budget can fill slot i
// while leaving enough values for the required slots left of it.
func (s *shifter) leaveForOptional(i int, t types.Type) bool {
	if !s.coverage {
		return false
	}
	capacity := len(s.pending) - len(s.skipped)
	if capacity <= 0 || s.remaining <= 0 {
		return false
	}

	v := s.received[s.cur]
	fits := false
	for _, slot := range s.pending {
		if types.IsOf(v, s.expected[slot]) {
			fits = true
			break
		}
	}
	if !fits {
		return false
	}

	for j := s.cur - 1; j >= s.requiredBefore[i]; j-- {
		skips := s.cur - j
		if skips > s.remaining || skips > capacity {
			return false
		}
		if types.IsOf(s.received[j], t) {
			return true
		}
	}
	return false
}

// closeRun records the pending optional slots and skipped values as a pair.
func (s *shifter) closeRun() {
	s.slotRuns = prepend(s.slotRuns, s.pending)
	s.valueRuns = prepend(s.valueRuns, s.skipped)
	s.pending = nil
	s.skipped = nil
}

// fillOptional matches skipped values to optional slots left to right. Each
// slot takes at most one value.
func (s *shifter) fillOptional(slots, values []int) error {
	p := 0
	for _, vi := range values {
		v := s.received[vi]
		for p < len(slots) && !types.IsOf(v, s.expected[slots[p]]) {
			p++
		}
		if p >= len(slots) {
			return mismatch(s.received, s.expected, false)
		}
		s.result[slots[p]] = v
		p++
	}
	return nil
}

func prepend[T any](list []T, v T) []T {
	return append([]T{v}, list...)
}
