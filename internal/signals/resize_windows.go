//go:build windows

package signals

import "os"

// Windows has no SIGWINCH; sizes are only applied by Sync.
func notifyResize(chan os.Signal) {}
