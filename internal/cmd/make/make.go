// Package makecmd provides the make command, which generates files from an
// installed brick.
package makecmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/bricks"
	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/config"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/prompter"
)

var onConflictModes = []string{"skip", "overwrite", "append", "prompt"}

// MakeOptions holds options for the make command.
type MakeOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (config.Config, error)
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)
	Prompter  func() *prompter.Prompter
	CacheDir  func() string

	Dir        string
	Global     bool
	Brick      string
	Capture    bool
	OnConflict string
}

// NewCmdMake creates the make command.
func NewCmdMake(f *cmdutil.Factory, runF func(context.Context, *MakeOptions) error) *cobra.Command {
	opts := &MakeOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		Workspace: f.Workspace,
		Mason:     f.Mason,
		Prompter:  f.Prompter,
		CacheDir:  f.CacheDir,
	}

	cmd := &cobra.Command{
		Use:   "make [DIR]",
		Short: "Generate files from an installed brick",
		Long: `Generates files into DIR from a brick installed in the workspace or,
with --global, in the global cache.

Each variable declared in the brick's brick.yaml is prompted for in order and
passed to "mason make" as a --<name> flag. Without DIR the target directory is
prompted for. mason runs in the terminal so its own prompts work; use
--capture to run it in the background instead.`,
		Example: `  # Pick a workspace brick and generate into ./lib
  brickyard make ./lib

  # Generate a global brick without the picker
  brickyard make -g --brick hello ./lib

  # Overwrite existing files and capture mason's output
  brickyard make --brick widget --on-conflict overwrite --capture .`,
		Args: cmdutil.RequiresMaxArgs(1),
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "make",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			if opts.OnConflict != "" && !slices.Contains(onConflictModes, opts.OnConflict) {
				return cmdutil.FlagErrorf("invalid --on-conflict %q: must be one of skip, overwrite, append, prompt", opts.OnConflict)
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return makeRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "Pick from bricks in the global cache")
	cmd.Flags().StringVarP(&opts.Brick, "brick", "b", "", "Brick to generate, skipping the picker")
	cmd.Flags().BoolVar(&opts.Capture, "capture", false, "Run mason in the background and print its output")
	cmd.Flags().StringVar(&opts.OnConflict, "on-conflict", "", "How mason handles existing files (skip, overwrite, append, prompt)")

	return cmd
}

func makeRun(ctx context.Context, opts *MakeOptions) error {
	ios := opts.IOStreams

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	ws, err := opts.Workspace()
	if err != nil {
		return err
	}

	dir, err := cmdutil.TargetDirectory(opts.IOStreams, opts.Prompter, opts.Dir)
	if err != nil {
		return err
	}

	client, err := opts.Mason()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(ctx, opts, client, ws)
	if err != nil {
		return err
	}

	name, err := pickBrick(opts, reg)
	if err != nil {
		return err
	}
	path, ok := reg.Lookup(name)
	if !ok {
		return cmdutil.FlagErrorf("brick %q is not installed", name)
	}

	b, err := bricks.ReadBrick(path)
	if err != nil {
		logger.Debug().Err(err).Str("brick", name).Str("path", path).Msg("reading brick.yaml")
		return cmdutil.Preconditionf("Could not read brick.yaml")
	}

	collector := &bricks.Collector{
		Prompter: opts.Prompter(),
		Notify:   func(msg string) { ios.PrintInfo("%s", msg) },
	}
	flags, err := collector.Collect(b.Vars)
	if err != nil {
		if errors.Is(err, prompter.ErrCancelled) {
			return cmdutil.CancelError
		}
		return err
	}

	onConflict := opts.OnConflict
	if onConflict == "" {
		onConflict = cfg.Settings().Mason.OnConflict
	}
	args := MakeArgs(b.Name, flags, dir, onConflict)
	logger.Debug().Str("brick", b.Name).Str("output_dir", dir).Bool("capture", opts.Capture).Msg("generating")

	if opts.Capture {
		out, err := client.Run(ctx, args, ws)
		if err != nil {
			return cmdutil.MasonError(ctx, err)
		}
		fmt.Fprint(ios.Out, out)
		return nil
	}
	return cmdutil.MasonError(ctx, client.RunInTerminal(ctx, args, ws))
}

// MakeArgs builds the argument string for `mason make`.
func MakeArgs(brick, flags, dir, onConflict string) string {
	args := "make " + brick
	if flags != "" {
		args += " " + flags
	}
	return args + " --output-dir=" + bricks.Quote(dir) + " --on-conflict=" + onConflict
}

// loadRegistry reads bricks.json for the workspace or the global cache. A
// workspace with a manifest but no registry is fetched once first.
func loadRegistry(ctx context.Context, opts *MakeOptions, client *mason.Client, ws string) (*bricks.Registry, error) {
	root := ws
	empty := "No bricks found in the workspace"
	if opts.Global {
		root = bricks.GlobalRoot(opts.CacheDir())
		empty = "No global bricks found"
	}

	reg, err := bricks.ReadRegistry(root)
	if err != nil && !opts.Global && cmdutil.HasManifest(ws) {
		logger.Debug().Err(err).Msg("registry missing, running mason get")
		if _, getErr := client.Run(ctx, "get", ws); getErr != nil {
			return nil, cmdutil.MasonError(ctx, getErr)
		}
		reg, err = bricks.ReadRegistry(root)
	}
	if err != nil {
		logger.Debug().Err(err).Str("root", root).Msg("reading registry")
		return nil, cmdutil.Preconditionf("%s", empty)
	}
	if reg.IsEmpty() {
		return nil, cmdutil.Preconditionf("%s", empty)
	}
	return reg, nil
}

func pickBrick(opts *MakeOptions, reg *bricks.Registry) (string, error) {
	if opts.Brick != "" {
		return opts.Brick, nil
	}
	if !opts.IOStreams.CanPrompt() {
		return "", cmdutil.FlagErrorf("--brick required when not running interactively")
	}
	names := reg.Names()
	idx, err := opts.Prompter().Select("Pick a brick", names, 0)
	if err != nil {
		return "", cmdutil.PromptError(err, "--brick required when not running interactively")
	}
	return names[idx], nil
}
