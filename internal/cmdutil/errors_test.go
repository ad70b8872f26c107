package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagErrorf(t *testing.T) {
	err := FlagErrorf("unknown flag: %s", "--foo")
	assert.Equal(t, "unknown flag: --foo", err.Error())

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, "unknown flag: --foo", flagErr.Error())
}

func TestFlagErrorWrap(t *testing.T) {
	inner := fmt.Errorf("bad value")
	err := FlagErrorWrap(inner)
	assert.Equal(t, "bad value", err.Error())

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.True(t, errors.Is(err, inner))
}

func TestSilentError(t *testing.T) {
	err := fmt.Errorf("mason get failed: %w", SilentError)
	assert.True(t, errors.Is(err, SilentError))
	assert.Equal(t, "SilentError", SilentError.Error())
}

func TestCancelError(t *testing.T) {
	assert.True(t, IsUserCancel(fmt.Errorf("make: %w", CancelError)))
	assert.False(t, IsUserCancel(SilentError))
}

func TestPreconditionf(t *testing.T) {
	err := Preconditionf("No mason.yaml was found in %s.", "the current workspace")
	assert.EqualError(t, err, "No mason.yaml was found in the current workspace.")

	var pre *PreconditionError
	assert.True(t, errors.As(err, &pre))
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 64}
	assert.Equal(t, "exit status 64", err.Error())
}
