//go:build !windows

package signals

import (
	"context"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptContext_SIGTERM(t *testing.T) {
	ctx, stop := InterruptContext(context.Background())
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("SIGTERM did not cancel the context")
	}
}

func TestWindowWatcher_SIGWINCH(t *testing.T) {
	var rows atomic.Uint32
	rows.Store(24)
	sizes := make(chan Size, 4)

	w := WatchWindow(func() (Size, error) {
		return Size{Rows: uint16(rows.Load()), Cols: 80}, nil
	}, func(s Size) error {
		sizes <- s
		return nil
	})
	defer w.Close()
	assert.Equal(t, Size{Rows: 24, Cols: 80}, <-sizes)

	rows.Store(30)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGWINCH))

	select {
	case s := <-sizes:
		assert.Equal(t, Size{Rows: 30, Cols: 80}, s)
	case <-time.After(2 * time.Second):
		t.Fatal("window change was not applied")
	}
}
