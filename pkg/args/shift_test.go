package args

import (
	"errors"
	"testing"

	"github.com/aretw0/insist/pkg/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	str     = types.String
	num     = types.Number
	boolean = types.Boolean
	obj     = types.Object
	fn      = types.Function
	opt     = types.Optional
)

func TestShift_Golden(t *testing.T) {
	tests := []struct {
		name     string
		expected []types.Type
		received []any
		want     []any
	}{
		{
			name:     "omitted middle optional",
			expected: []types.Type{str, opt(num), str},
			received: []any{"a", "b"},
			want:     []any{"a", nil, "b"},
		},
		{
			name:     "full length uses positions",
			expected: []types.Type{opt(num), str},
			received: []any{5, "x"},
			want:     []any{5, "x"},
		},
		{
			name:     "leading optional omitted",
			expected: []types.Type{opt(num), str},
			received: []any{"x"},
			want:     []any{nil, "x"},
		},
		{
			name:     "trailing optional omitted",
			expected: []types.Type{str, opt(str)},
			received: []any{"a"},
			want:     []any{"a", nil},
		},
		{
			name:     "required before trailing optional keeps its value",
			expected: []types.Type{str, str, opt(str)},
			received: []any{"a", "b"},
			want:     []any{"a", "b", nil},
		},
		{
			name:     "value skipped into the optional run after a required slot",
			expected: []types.Type{num, opt(fn), opt(obj)},
			received: []any{1, map[string]any{}},
			want:     []any{1, nil, map[string]any{}},
		},
		{
			name:     "only optional slots fill left to right",
			expected: []types.Type{opt(str), opt(num)},
			received: []any{5},
			want:     []any{nil, 5},
		},
		{
			name:     "only optional slots, nothing received",
			expected: []types.Type{opt(str), opt(num)},
			received: []any{},
			want:     []any{nil, nil},
		},
		{
			name:     "adjacent optionals with overlapping types fill the leftmost",
			expected: []types.Type{opt(num), opt(num), str},
			received: []any{1, "s"},
			want:     []any{1, nil, "s"},
		},
		{
			name:     "value covered by an earlier one goes to the trailing optional",
			expected: []types.Type{opt(str), num, opt(num)},
			received: []any{5, 6},
			want:     []any{nil, 5, 6},
		},
		{
			name:     "coverage prefers the optional run between required slots",
			expected: []types.Type{opt(num), num, opt(num), num},
			received: []any{1, 2, 3},
			want:     []any{nil, 1, 2, 3},
		},
		{
			name:     "no cover available keeps the value on the required slot",
			expected: []types.Type{num, opt(num), num},
			received: []any{1, 2},
			want:     []any{1, nil, 2},
		},
		{
			name:     "nullable required slot accepts explicit null",
			expected: []types.Type{types.Nullable(str), opt(num)},
			received: []any{nil},
			want:     []any{nil, nil},
		},
		{
			name:     "bare undefined slot",
			expected: []types.Type{types.Undefined, str},
			received: []any{"a"},
			want:     []any{nil, "a"},
		},
		{
			name:     "array and enum slots",
			expected: []types.Type{types.ArrayOf(str), opt(types.Enum(map[string]any{"Fast": 1, "Slow": 2})), boolean},
			received: []any{[]string{"x"}, true},
			want:     []any{[]string{"x"}, nil, true},
		},
		{
			name:     "enum optional filled",
			expected: []types.Type{types.ArrayOf(str), opt(types.Enum(map[string]any{"Fast": 1, "Slow": 2})), boolean},
			received: []any{[]string{"x"}, 2, true},
			want:     []any{[]string{"x"}, 2, true},
		},
		{
			name:     "covered value moves to the trailing optional of the same type",
			expected: []types.Type{opt(num), num, opt(num)},
			received: []any{5, 6},
			want:     []any{nil, 5, 6},
		},
		{
			name:     "value needed by a required slot on the left is not given away",
			expected: []types.Type{opt(num), str, types.Union{str, num}, opt(num)},
			received: []any{100, "b", 102},
			want:     []any{100, "b", 102, nil},
		},
		{
			name:     "union slot keeps its value when the slot before it is narrower",
			expected: []types.Type{str, types.Union{str, num}, opt(num)},
			received: []any{"a", 7},
			want:     []any{"a", 7, nil},
		},
		{
			name:     "empty signature",
			expected: nil,
			received: nil,
			want:     []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shift(tt.received, tt.expected...)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Shift() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShift_Errors(t *testing.T) {
	tests := []struct {
		name     string
		expected []types.Type
		received []any
		target   error
		message  string
	}{
		{
			name:     "too few without optionals",
			expected: []types.Type{str, str},
			received: []any{1},
			target:   ErrCardinality,
			message:  "Expected 2 arguments but received 1 instead.",
		},
		{
			name:     "too many without optionals",
			expected: []types.Type{str},
			received: []any{"a", "b"},
			target:   ErrCardinality,
			message:  "Expected 1 arguments but received 2 instead.",
		},
		{
			name:     "too few with optionals",
			expected: []types.Type{str, opt(num), str},
			received: []any{"a"},
			target:   ErrCardinality,
			message:  "Expected between 2 and 3 arguments but received 1 instead.",
		},
		{
			name:     "too many with optionals",
			expected: []types.Type{str, opt(num)},
			received: []any{"a", 1, 2},
			target:   ErrCardinality,
			message:  "Expected between 1 and 2 arguments but received 3 instead.",
		},
		{
			name:     "invalid declaration",
			expected: []types.Type{str, types.Union{}},
			received: []any{"a", "b"},
			target:   ErrInvalidDeclaration,
			message:  "Expected argument 1 is not a valid type.",
		},
		{
			name:     "positional mismatch",
			expected: []types.Type{str, num},
			received: []any{"a", "b"},
			target:   ErrTypeMismatch,
			message:  "Expected arguments to be (String, Number) but received (String, String) instead.",
		},
		{
			name:     "shifted mismatch on required slot",
			expected: []types.Type{str, opt(num)},
			received: []any{5},
			target:   ErrTypeMismatch,
			message:  "Expected arguments to be (String, Number or undefined or null) but received (Number) instead.",
		},
		{
			name:     "shifted mismatch on optional slot",
			expected: []types.Type{opt(str), opt(num)},
			received: []any{true},
			target:   ErrTypeMismatch,
			message:  "Expected arguments to be (String or undefined or null, Number or undefined or null) but received (Boolean) instead.",
		},
		{
			name:     "undefined never fills a required slot",
			expected: []types.Type{str, opt(num), str},
			received: []any{"a", types.Undef},
			target:   ErrTypeMismatch,
		},
		{
			name:     "null never fills a plain required slot",
			expected: []types.Type{str},
			received: []any{nil},
			target:   ErrTypeMismatch,
		},
		{
			name:     "pointer to nil pointer is named null",
			expected: []types.Type{num},
			received: []any{new(*int)},
			target:   ErrTypeMismatch,
			message:  "Expected arguments to be (Number) but received (null) instead.",
		},
		{
			name:     "skip budget exhausted",
			expected: []types.Type{opt(num), str, str},
			received: []any{"a", 1},
			target:   ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shift(tt.received, tt.expected...)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.target)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestShift_ErrorDetails(t *testing.T) {
	_, err := Shift([]any{"a"}, str, opt(num), str)
	var cardinality *CardinalityError
	require.True(t, errors.As(err, &cardinality))
	assert.Equal(t, CardinalityError{Min: 2, Max: 3, Got: 1}, *cardinality)

	_, err = Shift([]any{1}, str, types.Union{})
	var decl *DeclarationError
	require.True(t, errors.As(err, &decl))
	assert.Equal(t, 1, decl.Index)

	_, err = Shift([]any{1, 2}, str, num)
	var mm *MismatchError
	require.True(t, errors.As(err, &mm))
	assert.Equal(t, []string{"String", "Number"}, mm.Expected)
	assert.Equal(t, []string{"Number", "Number"}, mm.Received)
	assert.NotErrorIs(t, err, ErrShiftAmbiguity)
}

func TestShift_NoOptionalsWrongCount(t *testing.T) {
	signatures := [][]types.Type{
		{str},
		{num, boolean},
		{types.ArrayOf(num), types.Nullable(str), obj},
	}
	for _, sig := range signatures {
		for n := 0; n <= len(sig)+2; n++ {
			if n == len(sig) {
				continue
			}
			received := make([]any, n)
			_, err := Shift(received, sig...)
			assert.ErrorIs(t, err, ErrCardinality, "signature %v with %d values", types.Signature(sig).Names(), n)
		}
	}
}

func TestShift_FullLengthReturnsInputUnchanged(t *testing.T) {
	received := []any{"a", types.Undef, 3}
	got, err := Shift(received, str, opt(num), num)
	require.NoError(t, err)
	assert.Equal(t, received, got)

	// The result is a copy.
	got[0] = "changed"
	assert.Equal(t, "a", received[0])
}

func TestShift_Idempotent(t *testing.T) {
	signatures := []struct {
		expected []types.Type
		received []any
	}{
		{[]types.Type{str, opt(num), str}, []any{"a", "b"}},
		{[]types.Type{opt(str), num, opt(num)}, []any{5, 6}},
		{[]types.Type{opt(num), num, opt(num), num}, []any{1, 2, 3}},
		{[]types.Type{num, opt(fn), opt(obj)}, []any{1, map[string]any{"k": 1}}},
	}
	for _, sig := range signatures {
		first, err := Shift(sig.received, sig.expected...)
		require.NoError(t, err)

		second, err := Shift(first, sig.expected...)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check([]any{"a", 1}, str, num))
	assert.ErrorIs(t, Check([]any{"a"}, str, opt(num)), ErrCardinality)
	assert.ErrorIs(t, Check([]any{1, 1}, str, num), ErrTypeMismatch)
	assert.ErrorIs(t, Check([]any{1}, nil), ErrInvalidDeclaration)
}

func TestBounds(t *testing.T) {
	required, total, err := Bounds([]types.Type{str, opt(num), types.Undefined, num})
	require.NoError(t, err)
	assert.Equal(t, 2, required)
	assert.Equal(t, 4, total)
}
