package watch

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLock(t *testing.T) {
	locks := filepath.Join(t.TempDir(), "locks")

	first, err := AcquireLock(locks, "/work/app")
	require.NoError(t, err)

	_, err = AcquireLock(locks, "/work/app")
	require.ErrorIs(t, err, ErrAlreadyWatching)

	other, err := AcquireLock(locks, "/work/other")
	require.NoError(t, err, "different workspaces do not contend")
	require.NoError(t, other.Release())

	require.NoError(t, first.Release())
	again, err := AcquireLock(locks, "/work/app")
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestLockPath(t *testing.T) {
	a := LockPath("/state/locks", "/work/app")
	assert.Equal(t, a, LockPath("/state/locks", "/work/app/"))
	assert.NotEqual(t, a, LockPath("/state/locks", "/work/other"))
	assert.True(t, strings.HasPrefix(filepath.Base(a), "watch-"))
	assert.Equal(t, ".lock", filepath.Ext(a))
}
