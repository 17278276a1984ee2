package args

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMismatchError_Ambiguous(t *testing.T) {
	err := &MismatchError{Expected: []string{"String"}, Received: []string{}, Ambiguous: true}

	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, ErrShiftAmbiguity)
	assert.Equal(t, "Expected arguments to be (String) but received () instead.", err.Error())

	plain := &MismatchError{Expected: []string{"String"}}
	assert.NotErrorIs(t, plain, ErrShiftAmbiguity)
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("open handler: %w", &CardinalityError{Min: 1, Max: 1, Got: 0})
	assert.True(t, errors.Is(err, ErrCardinality))
	assert.False(t, errors.Is(err, ErrTypeMismatch))

	decl := fmt.Errorf("declare: %w", &DeclarationError{Index: 3})
	assert.ErrorIs(t, decl, ErrInvalidDeclaration)
	assert.Contains(t, decl.Error(), "argument 3")
}
