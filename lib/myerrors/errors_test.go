package myerrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type customError struct{}

func (customError) Error() string      { return "custom" }
func (customError) GetErrorKind() Kind { return KindConflict }

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name      string
		in        error
		kind      Kind
		errorText string
	}{
		{
			name:      "Unclassified error",
			in:        myErr,
			kind:      KindInternal,
			errorText: "my error",
		},
		{
			name:      "Invalid input error",
			in:        NewInvalidInputError(myErr),
			kind:      KindInvalidInput,
			errorText: "invalid-input: my error",
		},
		{
			name:      "Invalid input errorf",
			in:        NewInvalidInputErrorf("%s: %d", myErr.Error(), 123),
			kind:      KindInvalidInput,
			errorText: "invalid-input: my error: 123",
		},
		{
			name:      "Not found error",
			in:        NewNotFoundError(myErr),
			kind:      KindNotFound,
			errorText: "not-found: my error",
		},
		{
			name:      "Not found errorf",
			in:        NewNotFoundErrorf("service %q", "router"),
			kind:      KindNotFound,
			errorText: `not-found: service "router"`,
		},
		{
			name:      "Conflict error",
			in:        NewConflictError(myErr),
			kind:      KindConflict,
			errorText: "conflict: my error",
		},
		{
			name:      "Internal error",
			in:        NewInternalError(myErr),
			kind:      KindInternal,
			errorText: "internal: my error",
		},
		{
			name:      "Not implemented error",
			in:        NewNotImplementedError(myErr),
			kind:      KindNotImplemented,
			errorText: "not-implemented: my error",
		},
		{
			name:      "Wrapped classified error",
			in:        fmt.Errorf("boot: %w", NewNotFoundError(myErr)),
			kind:      KindNotFound,
			errorText: "boot: not-found: my error",
		},
		{
			name:      "Custom kind coder",
			in:        customError{},
			kind:      KindConflict,
			errorText: "custom",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, GetKind(tc.in))
			assert.Equal(t, tc.errorText, tc.in.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	myErr := fmt.Errorf("my error")
	assert.ErrorIs(t, NewInvalidInputError(myErr), myErr)
	assert.True(t, IsInvalidInput(NewInvalidInputError(myErr)))
	assert.False(t, IsInvalidInput(nil))
	assert.True(t, IsNotFound(NewNotFoundError(myErr)))
}
