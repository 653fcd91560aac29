package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(CodeGenerationFailed, "gemini request failed", cause)

	require.True(t, IsCode(err, CodeGenerationFailed))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "gemini request failed: dial tcp: timeout", err.Error())

	wrapped := fmt.Errorf("search: %w", err)
	require.Equal(t, CodeGenerationFailed, CodeOf(wrapped))
	require.Equal(t, "", CodeOf(cause))
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(CodeInvalidRequestKind, "unknown search type", nil)
	require.Equal(t, "unknown search type", err.Error())
	require.Nil(t, errors.Unwrap(err))
}
