package get

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams/iostreamstest"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/mason/masontest"
)

func TestNewCmdGet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDir string
		wantErr bool
	}{
		{name: "no flags", input: ""},
		{name: "dir", input: "--dir packages/app", wantDir: "packages/app"},
		{name: "dir shorthand", input: "-d app", wantDir: "app"},
		{name: "positional argument", input: "app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &cmdutil.Factory{}

			var gotOpts *GetOptions
			cmd := NewCmdGet(f, func(_ context.Context, opts *GetOptions) error {
				gotOpts = opts
				return nil
			})

			cmd.Flags().BoolP("help", "x", false, "")

			argv, err := shlex.Split(tt.input)
			require.NoError(t, err)
			cmd.SetArgs(argv)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err = cmd.ExecuteC()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, gotOpts)
			require.Equal(t, tt.wantDir, gotOpts.Dir)
		})
	}
}

func TestCmdGet_Properties(t *testing.T) {
	cmd := NewCmdGet(&cmdutil.Factory{}, nil)

	require.Equal(t, "get", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotEmpty(t, cmd.Long)
	require.NotEmpty(t, cmd.Example)
	require.NotNil(t, cmd.RunE)
	require.NotNil(t, cmd.Flags().Lookup("dir"))
}

func writeManifest(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mason.yaml"), []byte("bricks:\n  hello: 0.1.0\n"), 0o644))
}

func TestGetRun(t *testing.T) {
	ws := t.TempDir()
	nested := filepath.Join(ws, "packages", "app")
	writeManifest(t, ws)
	writeManifest(t, nested)

	tests := []struct {
		name    string
		dir     string
		wantDir string
	}{
		{name: "workspace root", wantDir: ws},
		{name: "explicit dir", dir: nested, wantDir: nested},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreamstest.New()
			client, runner, _ := masontest.NewClient(ios.IOStreams)

			err := getRun(context.Background(), &GetOptions{
				IOStreams: ios.IOStreams,
				Workspace: func() (string, error) { return ws, nil },
				Mason:     func() (*mason.Client, error) { return client, nil },
				Dir:       tt.dir,
			})
			require.NoError(t, err)

			assert.Equal(t, []masontest.Call{{Args: "get", Dir: tt.wantDir}}, runner.Calls())
			assert.Contains(t, ios.ErrBuf.String(), "✓ mason get")
		})
	}
}

func TestGetRun_Preconditions(t *testing.T) {
	ws := t.TempDir()

	tests := []struct {
		name    string
		dir     string
		wantErr string
	}{
		{name: "no manifest", wantErr: "No mason.yaml was found in the current workspace."},
		{name: "missing dir", dir: filepath.Join(ws, "missing"), wantErr: filepath.Join(ws, "missing") + " is not a directory."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreamstest.New()
			client, runner, _ := masontest.NewClient(ios.IOStreams)

			err := getRun(context.Background(), &GetOptions{
				IOStreams: ios.IOStreams,
				Workspace: func() (string, error) { return ws, nil },
				Mason:     func() (*mason.Client, error) { return client, nil },
				Dir:       tt.dir,
			})

			assert.EqualError(t, err, tt.wantErr)
			assert.Empty(t, runner.Calls())
		})
	}
}
