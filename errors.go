package insist

import (
	"errors"
	"fmt"

	"github.com/aretw0/insist/pkg/args"
)

// ErrInvalidType is returned by OfType and IsType for malformed descriptors.
var ErrInvalidType = errors.New("invalid type")

// ErrTypeMismatch is returned when a value does not satisfy its type.
// It is the same sentinel Args uses.
var ErrTypeMismatch = args.ErrTypeMismatch

// Sentinels returned by Args, re-exported for convenience.
var (
	ErrInvalidDeclaration = args.ErrInvalidDeclaration
	ErrCardinality        = args.ErrCardinality
	ErrShiftAmbiguity     = args.ErrShiftAmbiguity
)

// TypeError is returned by OfType and IsType.
type TypeError struct {
	Value string // pretty name of the offending value
	Type  string // pretty name of the expected type
	// Invalid is set when the descriptor itself was rejected.
	Invalid bool
}

func (e *TypeError) Error() string {
	if e.Invalid {
		return fmt.Sprintf("Expected a type but received %s.", e.Type)
	}
	return fmt.Sprintf("Expected %s to be an instance of %s.", e.Value, e.Type)
}

func (e *TypeError) Unwrap() error {
	if e.Invalid {
		return ErrInvalidType
	}
	return ErrTypeMismatch
}
