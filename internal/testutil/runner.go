// Package testutil holds test doubles shared across package tests.
package testutil

import (
	"context"
	"os"
	"strings"

	"github.com/dotfiles-kit/cursor-sync/internal/command"
)

// Call records one invocation of FakeRunner.Run.
type Call struct {
	Name string
	Args []string
	Dir  string // working directory at the time of the call
}

// Line returns the call as a single space-separated command line.
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is the canned result for a command line.
type Response struct {
	Output *command.Output
	Err    error
}

// FakeRunner is a command.Runner that returns canned responses keyed by the
// full command line (e.g. "git push origin main"). Unknown commands succeed
// with empty output.
type FakeRunner struct {
	Responses map[string]Response
	Calls     []Call
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]Response)}
}

// On registers a response for a command line and returns the runner for chaining.
func (f *FakeRunner) On(line string, out *command.Output, err error) *FakeRunner {
	f.Responses[line] = Response{Output: out, Err: err}
	return f
}

// Run implements command.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (*command.Output, error) {
	dir, _ := os.Getwd()
	call := Call{Name: name, Args: append([]string(nil), args...), Dir: dir}
	f.Calls = append(f.Calls, call)

	if resp, ok := f.Responses[call.Line()]; ok {
		if resp.Output == nil && resp.Err == nil {
			return &command.Output{}, nil
		}
		return resp.Output, resp.Err
	}
	return &command.Output{}, nil
}

// CallsTo returns the recorded calls for the named executable.
func (f *FakeRunner) CallsTo(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
