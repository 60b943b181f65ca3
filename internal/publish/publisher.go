package publish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dotfiles-kit/cursor-sync/internal/branding"
	"github.com/dotfiles-kit/cursor-sync/internal/command"
)

// Default push target.
const (
	DefaultRemote = "origin"
	DefaultBranch = "main"
)

// timestampLayout renders as 2006-01-02 15:04:05.
const timestampLayout = time.DateTime

// Publisher commits and pushes a repository through git.
type Publisher struct {
	Runner command.Runner
	Remote string
	Branch string
}

// New returns a Publisher pushing to remote/branch. Empty values fall back
// to origin/main.
func New(runner command.Runner, remote, branch string) *Publisher {
	if remote == "" {
		remote = DefaultRemote
	}
	if branch == "" {
		branch = DefaultBranch
	}
	return &Publisher{Runner: runner, Remote: remote, Branch: branch}
}

// CommitMessage builds the commit message for a sync made at now.
func CommitMessage(now time.Time) string {
	return fmt.Sprintf("Update %s settings - %s", branding.EditorName(), now.Format(timestampLayout))
}

// Steps returns the git argument lists Publish runs, in order.
func (p *Publisher) Steps(message string) [][]string {
	return [][]string{
		{"add", "."},
		{"commit", "-m", message},
		{"push", p.Remote, p.Branch},
	}
}

// Publish stages everything under repoDir, commits it with message and
// pushes. The first failing step aborts the sequence; nothing is retried or
// rolled back.
func (p *Publisher) Publish(ctx context.Context, repoDir, message string) error {
	return InDir(repoDir, func() error {
		for _, args := range p.Steps(message) {
			if err := p.git(ctx, args); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Publisher) git(ctx context.Context, args []string) error {
	out, err := p.Runner.Run(ctx, "git", args...)
	if err != nil {
		return &GitError{Args: args, Err: fmt.Errorf("%w: %w", ErrGitFailed, err)}
	}
	if !out.Success() {
		detail := strings.TrimSpace(out.Stderr)
		if detail == "" {
			detail = strings.TrimSpace(out.Stdout)
		}
		return &GitError{Args: args, ExitCode: out.ExitCode, Output: detail, Err: ErrGitFailed}
	}
	return nil
}
