package args

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDeclaration is returned when a declared type is not a valid descriptor.
	ErrInvalidDeclaration = errors.New("invalid declaration")
	// ErrCardinality is returned when the number of received arguments is out of bounds.
	ErrCardinality = errors.New("wrong number of arguments")
	// ErrTypeMismatch is returned when the arguments cannot be matched to the declared types.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrShiftAmbiguity is returned when optional and required runs cannot be paired.
	// It is reported with the same diagnostic as ErrTypeMismatch.
	ErrShiftAmbiguity = errors.New("shift ambiguity")
)

// DeclarationError identifies the declared slot whose type is invalid.
type DeclarationError struct {
	Index int
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("Expected argument %d is not a valid type.", e.Index)
}

func (e *DeclarationError) Unwrap() error { return ErrInvalidDeclaration }

// CardinalityError reports the acceptable argument count range and the actual count.
type CardinalityError struct {
	Min int
	Max int
	Got int
}

func (e *CardinalityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("Expected %d arguments but received %d instead.", e.Max, e.Got)
	}
	return fmt.Sprintf("Expected between %d and %d arguments but received %d instead.", e.Min, e.Max, e.Got)
}

func (e *CardinalityError) Unwrap() error { return ErrCardinality }

// MismatchError lists the name of every expected slot and every received value.
// It never pinpoints a single slot.
type MismatchError struct {
	Expected []string
	Received []string
	// Ambiguous is set when the failure came from unpairable optional runs.
	Ambiguous bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("Expected arguments to be (%s) but received (%s) instead.",
		strings.Join(e.Expected, ", "), strings.Join(e.Received, ", "))
}

func (e *MismatchError) Unwrap() error { return ErrTypeMismatch }

// Is lets an ambiguous mismatch also match ErrShiftAmbiguity.
func (e *MismatchError) Is(target error) bool {
	return e.Ambiguous && target == ErrShiftAmbiguity
}
