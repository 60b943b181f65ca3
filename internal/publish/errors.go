package publish

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitFailed indicates a git command exited non-zero.
var ErrGitFailed = errors.New("git operation failed")

// GitError records which git subcommand failed and what it printed.
type GitError struct {
	Args     []string
	ExitCode int
	Output   string
	Err      error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("%s (exit %d)", msg, e.ExitCode)
	}
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GitError) Unwrap() error { return e.Err }
