package cmdutil

import (
	"github.com/schmitthub/brickyard/internal/config"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/prompter"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Configuration from flags (set before command execution)
	WorkspaceFlag string
	Debug         bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Dependency providers (closures wired by factory constructor)
	Config    func() (config.Config, error)
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)
	Prompter  func() *prompter.Prompter
	CacheDir  func() string
}
