package bricks

import (
	"os"
	"path/filepath"
	"runtime"
)

// Env is the subset of the process environment the cache lookup reads.
type Env interface {
	Getenv(key string) string
}

// EnvFunc adapts a lookup function to Env.
type EnvFunc func(string) string

func (f EnvFunc) Getenv(key string) string { return f(key) }

// OSEnv reads the real process environment.
var OSEnv Env = EnvFunc(os.Getenv)

// ResolveCacheDir locates mason's cache root. MASON_CACHE wins; on Windows
// the roaming app data copy is used when present, otherwise the local one;
// elsewhere it lives under $HOME.
func ResolveCacheDir(env Env, goos string, exists func(string) bool) string {
	if dir := env.Getenv("MASON_CACHE"); dir != "" {
		return dir
	}
	if goos == "windows" {
		roaming := filepath.Join(env.Getenv("APPDATA"), "Mason", "Cache")
		if exists(roaming) {
			return roaming
		}
		return filepath.Join(env.Getenv("LOCALAPPDATA"), "Mason", "Cache")
	}
	return filepath.Join(env.Getenv("HOME"), ".mason-cache")
}

// CacheDir resolves the cache root for the running process.
func CacheDir() string {
	return ResolveCacheDir(OSEnv, runtime.GOOS, dirExists)
}

// GlobalRoot is the directory whose .mason/bricks.json lists global bricks.
func GlobalRoot(cacheDir string) string {
	return filepath.Join(cacheDir, "global")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
