package bricks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// MasonDir is the per-workspace directory mason maintains.
	MasonDir = ".mason"
	// RegistryFileName maps installed brick names to their local paths.
	RegistryFileName = "bricks.json"
)

// ErrNoRegistry is returned when bricks.json is missing or unreadable.
var ErrNoRegistry = errors.New("no bricks.json found")

// Entry is one installed brick.
type Entry struct {
	Name string
	Path string
}

// Registry is a parsed bricks.json. Entries keep file order.
type Registry struct {
	// Root is the directory holding .mason; relative paths resolve against it.
	Root    string
	Entries []Entry
}

// RegistryPath returns <root>/.mason/bricks.json.
func RegistryPath(root string) string {
	return filepath.Join(root, MasonDir, RegistryFileName)
}

// ReadRegistry reads <root>/.mason/bricks.json.
func ReadRegistry(root string) (*Registry, error) {
	path := RegistryPath(root)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRegistry, err)
	}
	defer f.Close()

	entries, err := decodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoRegistry, path, err)
	}
	return &Registry{Root: root, Entries: entries}, nil
}

// decodeRegistry walks the top-level object token by token so entries come
// back in the order mason wrote them.
func decodeRegistry(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		var path string
		if err := dec.Decode(&path); err != nil {
			return nil, fmt.Errorf("brick %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Path: path})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Names lists the installed brick names in file order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the absolute path of the named brick.
func (r *Registry) Lookup(name string) (string, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			if filepath.IsAbs(e.Path) {
				return e.Path, true
			}
			return filepath.Join(r.Root, e.Path), true
		}
	}
	return "", false
}

// IsEmpty reports whether the registry lists no bricks.
func (r *Registry) IsEmpty() bool {
	return r == nil || len(r.Entries) == 0
}
