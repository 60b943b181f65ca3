package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/dotfiles-kit/cursor-sync/internal/command"
)

// ListExtensionsFlag asks the editor CLI to print one extension id per line.
const ListExtensionsFlag = "--list-extensions"

// ListStatus classifies the outcome of an extension listing.
type ListStatus int

const (
	// ListOK means the CLI ran and exited 0.
	ListOK ListStatus = iota
	// ListNotFound means the CLI is not installed or not on PATH.
	ListNotFound
	// ListFailed means the CLI could not be run or exited non-zero.
	ListFailed
)

func (s ListStatus) String() string {
	switch s {
	case ListOK:
		return "ok"
	case ListNotFound:
		return "not-found"
	case ListFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ListResult is the outcome of Lister.List. Extensions is empty unless
// Status is ListOK.
type ListResult struct {
	Status     ListStatus
	Extensions []string
	ExitCode   int
	Stderr     string
	Err        error
}

// Lister queries the editor CLI for installed extensions.
type Lister struct {
	Runner command.Runner
	CLI    string
}

// NewLister returns a Lister invoking cli through runner.
func NewLister(runner command.Runner, cli string) *Lister {
	return &Lister{Runner: runner, CLI: cli}
}

// List runs `<cli> --list-extensions`. It never returns an error: every
// failure is folded into the result so callers can report it and carry on.
func (l *Lister) List(ctx context.Context) ListResult {
	out, err := l.Runner.Run(ctx, l.CLI, ListExtensionsFlag)
	if err != nil {
		if errors.Is(err, command.ErrNotFound) {
			return ListResult{Status: ListNotFound, Err: err}
		}
		return ListResult{Status: ListFailed, Err: err}
	}
	if !out.Success() {
		return ListResult{Status: ListFailed, ExitCode: out.ExitCode, Stderr: strings.TrimSpace(out.Stderr)}
	}
	return ListResult{Status: ListOK, Extensions: ParseExtensions(out.Stdout)}
}

// ParseExtensions splits CLI output into extension ids, dropping blank lines
// and keeping the CLI's order.
func ParseExtensions(stdout string) []string {
	var exts []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		exts = append(exts, line)
	}
	return exts
}
