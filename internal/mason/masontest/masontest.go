// Package masontest provides test doubles for the mason package so command
// tests never spawn a real mason binary.
package masontest

import (
	"context"
	"sync"

	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/term"
)

// Call records one captured invocation.
type Call struct {
	Args string
	Dir  string
}

// FakeRunner is a scripted mason.Runner. Responses are keyed by the exact
// argument string; unknown arguments succeed with empty output.
type FakeRunner struct {
	Missing bool
	Outputs map[string]string
	Errors  map[string]error
	// OnRun runs before the response is returned, e.g. to create files a
	// real mason would have written.
	OnRun func(args, dir string)

	mu    sync.Mutex
	calls []Call
}

// Run implements mason.Runner.
func (r *FakeRunner) Run(_ context.Context, args, dir string) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Args: args, Dir: dir})
	r.mu.Unlock()
	if r.OnRun != nil {
		r.OnRun(args, dir)
	}
	if err, ok := r.Errors[args]; ok {
		return "", err
	}
	return r.Outputs[args], nil
}

// IsInstalled implements mason.Runner.
func (r *FakeRunner) IsInstalled(context.Context) bool { return !r.Missing }

// Calls returns a copy of the recorded invocations.
func (r *FakeRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Args returns only the argument strings of the recorded invocations.
func (r *FakeRunner) Args() []string {
	var out []string
	for _, c := range r.Calls() {
		out = append(out, c.Args)
	}
	return out
}

// FakeTerminal records terminal requests instead of opening a pty.
type FakeTerminal struct {
	Err error

	mu       sync.Mutex
	requests []term.Request
}

// Run implements mason.Terminal.
func (t *FakeTerminal) Run(_ context.Context, req term.Request) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = append(t.requests, req)
	return t.Err
}

// Requests returns a copy of the recorded requests.
func (t *FakeTerminal) Requests() []term.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]term.Request(nil), t.requests...)
}

// NewClient returns a mason.Client wired to fresh fakes.
func NewClient(ios *iostreams.IOStreams) (*mason.Client, *FakeRunner, *FakeTerminal) {
	runner := &FakeRunner{Outputs: map[string]string{}, Errors: map[string]error{}}
	terminal := &FakeTerminal{}
	client := &mason.Client{
		IOStreams: ios,
		Runner:    runner,
		Terminal:  terminal,
	}
	return client, runner, terminal
}
