package cmdutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/schmitthub/brickyard/internal/git"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/prompter"
)

// ManifestFileName is the workspace manifest mason reads.
const ManifestFileName = "mason.yaml"

// ResolveWorkspace returns the active workspace root: the explicit flag
// value, else the root of the git worktree containing cwd, else cwd. The
// result must be an existing directory.
func ResolveWorkspace(flag, cwd string) (string, error) {
	root := flag
	if root == "" {
		root = cwd
		if repoRoot, err := git.RepoRoot(cwd); err == nil {
			root = repoRoot
		} else if !errors.Is(err, git.ErrNotRepository) {
			return "", err
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	if !IsDir(abs) {
		return "", Preconditionf("No workspace is open: %s is not a directory.", abs)
	}
	return abs, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// HasManifest reports whether dir contains mason.yaml.
func HasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestFileName))
	return err == nil && !info.IsDir()
}

// TargetDirectory returns dir as an absolute path when it is an existing
// directory. Otherwise it asks for a folder, offering the current directory,
// and fails with "Please select a valid directory" when the answer is not one.
func TargetDirectory(ios *iostreams.IOStreams, prompt func() *prompter.Prompter, dir string) (string, error) {
	if dir != "" {
		if IsDir(dir) {
			return filepath.Abs(dir)
		}
		if !ios.CanPrompt() {
			return "", Preconditionf("Please select a valid directory")
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	answer, err := prompt().String(prompter.PromptConfig{
		Message: "Select a folder",
		Default: cwd,
	})
	if err != nil {
		return "", PromptError(err, "pass the target directory as DIR")
	}
	if !IsDir(answer) {
		return "", Preconditionf("Please select a valid directory")
	}
	return filepath.Abs(answer)
}
