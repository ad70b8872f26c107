package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultExecutable    = "mason"
	DefaultInstallURL    = "https://github.com/felangel/mason/tree/master/packages/mason_cli#installation"
	DefaultOnConflict    = "skip"
	DefaultStatusTimeout = 3 * time.Second
	DefaultDebounce      = 300 * time.Millisecond
)

// DefaultIgnore is the set of directory names the watcher skips.
var DefaultIgnore = []string{".git", ".mason", ".dart_tool", "node_modules", "build"}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mason.executable", DefaultExecutable)
	v.SetDefault("mason.install_url", DefaultInstallURL)
	v.SetDefault("mason.on_conflict", DefaultOnConflict)
	v.SetDefault("status.timeout", DefaultStatusTimeout)
	v.SetDefault("prompt.tui", true)
	v.SetDefault("watch.debounce", DefaultDebounce)
	v.SetDefault("watch.ignore", DefaultIgnore)
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_age_days", 7)
	v.SetDefault("logging.max_backups", 3)
}
