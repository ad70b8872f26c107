package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArgsTestCmd() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "brickyard"}
	child := &cobra.Command{Use: "add [BRICK]", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)
	return root, child
}

func TestNoArgs(t *testing.T) {
	root, child := newArgsTestCmd()

	require.NoError(t, NoArgs(child, nil))

	err := NoArgs(child, []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brickyard: 'brickyard add' accepts no arguments")

	err = NoArgs(root, []string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: brickyard bogus")
}

func TestRequiresMaxArgs(t *testing.T) {
	_, child := newArgsTestCmd()
	validate := RequiresMaxArgs(1)

	assert.NoError(t, validate(child, nil))
	assert.NoError(t, validate(child, []string{"hello"}))

	err := validate(child, []string{"hello", "widget"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at most 1 argument\n")

	var flagErr *FlagError
	assert.ErrorAs(t, err, &flagErr)
}

func TestExactArgs(t *testing.T) {
	_, child := newArgsTestCmd()

	assert.NoError(t, ExactArgs(1)(child, []string{"hello"}))

	err := ExactArgs(1)(child, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 1 argument")

	err = ExactArgs(2)(child, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 2 arguments")
}
