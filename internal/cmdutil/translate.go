package cmdutil

import (
	"context"
	"errors"

	"github.com/schmitthub/brickyard/internal/prompter"
)

// PromptError maps prompter failures onto the CLI's error types. A dismissed
// prompt becomes CancelError; a required answer in a session that cannot
// prompt becomes a FlagError carrying hint.
func PromptError(err error, hint string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, prompter.ErrCancelled):
		return CancelError
	case errors.Is(err, prompter.ErrRequiredInput):
		return FlagErrorf("%s", hint)
	default:
		return err
	}
}

// MasonError maps a failure returned by mason.Client, which has already
// been shown to the user, onto SilentError. An interrupted run is a cancel.
func MasonError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return CancelError
	default:
		return SilentError
	}
}
