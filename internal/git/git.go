// Package git locates the repository that contains the workspace.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/format/gitignore"
)

// ErrNotRepository is returned when a path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Repo is an opened repository with a working tree.
type Repo struct {
	repo *gogit.Repository
	root string
}

// Open opens the git repository containing path, walking up the directory
// tree to find it.
//
// Returns ErrNotRepository (wrapped) if path is not inside a git repository.
func Open(path string) (*Repo, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repo{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the root directory of the working tree.
func (r *Repo) Root() string {
	return r.root
}

// RepoRoot returns the working tree root containing path.
func RepoRoot(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	return r.Root(), nil
}

// IgnoreMatcher loads the repository's .gitignore files and returns a
// function reporting whether an absolute path is ignored. Paths outside the
// working tree are never ignored.
func (r *Repo) IgnoreMatcher() (func(path string, isDir bool) bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("reading .gitignore: %w", err)
	}
	matcher := gitignore.NewMatcher(patterns)

	return func(path string, isDir bool) bool {
		rel, err := filepath.Rel(r.root, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return false
		}
		return matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), isDir)
	}, nil
}
