package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	configDirEnv = "BRICKYARD_CONFIG_DIR"
	stateDirEnv  = "BRICKYARD_STATE_DIR"

	xdgConfigHome = "XDG_CONFIG_HOME"
	xdgStateHome  = "XDG_STATE_HOME"
	appData       = "APPDATA"

	appName          = "brickyard"
	settingsFileName = "config.yaml"
	logsSubdir       = "logs"
	locksSubdir      = "locks"
)

// ConfigDir returns the brickyard config directory.
func ConfigDir() string {
	if a := os.Getenv(configDirEnv); a != "" {
		return a
	}
	if b := os.Getenv(xdgConfigHome); b != "" {
		return filepath.Join(b, appName)
	}
	if runtime.GOOS == "windows" {
		if c := os.Getenv(appData); c != "" {
			return filepath.Join(c, appName)
		}
	}
	d, _ := os.UserHomeDir()
	return filepath.Join(d, ".config", appName)
}

// StateDir returns the brickyard state directory (logs, lock files).
func StateDir() string {
	if a := os.Getenv(stateDirEnv); a != "" {
		return a
	}
	if b := os.Getenv(xdgStateHome); b != "" {
		return filepath.Join(b, appName)
	}
	if runtime.GOOS == "windows" {
		if c := os.Getenv(appData); c != "" {
			return filepath.Join(c, appName, "state")
		}
	}
	d, _ := os.UserHomeDir()
	return filepath.Join(d, ".local", "state", appName)
}

// SettingsFilePath returns the path of the user settings file.
func SettingsFilePath() string {
	return filepath.Join(ConfigDir(), settingsFileName)
}

// LogsDir returns the directory holding brickyard.log.
func LogsDir() string {
	return filepath.Join(StateDir(), logsSubdir)
}

// LocksDir returns the directory holding watcher lock files.
func LocksDir() string {
	return filepath.Join(StateDir(), locksSubdir)
}
