package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "should vanish"))
}

func TestWrapPreservesExistingAppError(t *testing.T) {
	orig := New(CodeInvalidConfiguration, "bad keys")
	wrapped := Wrap(fmt.Errorf("outer: %w", orig), CodeInternal, "other")

	assert.Equal(t, CodeInvalidConfiguration, wrapped.Code)
}

func TestIsAndGetCode(t *testing.T) {
	err := New(CodeConfigReadError, "cannot read")

	assert.True(t, Is(err, CodeConfigReadError))
	assert.False(t, Is(err, CodeInternal))
	assert.Equal(t, CodeConfigReadError, GetCode(err))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
}

func TestGetUserFacingMessageFindsNestedError(t *testing.T) {
	inner := NewUserFacing(CodeInvalidConfiguration, "unknown keys", "use the seven level names")
	outer := Wrap(fmt.Errorf("call failed: %w", inner), CodeInternal, "call failed")
	require.NotNil(t, outer)

	msg, suggestion, ok := GetUserFacingMessage(outer)
	assert.True(t, ok)
	assert.Equal(t, "unknown keys", msg)
	assert.Equal(t, "use the seven level names", suggestion)
}

func TestGetUserFacingMessageFallsBack(t *testing.T) {
	_, _, ok := GetUserFacingMessage(fmt.Errorf("boom"))
	assert.False(t, ok)
}
