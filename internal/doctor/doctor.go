package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/dotfiles-kit/cursor-sync/internal/command"
	"github.com/dotfiles-kit/cursor-sync/internal/dotfiles"
)

// MinGitVersion is the oldest git known to accept `git -C` and
// `git remote get-url`, both used by these checks.
const MinGitVersion = "2.7.0"

var gitVersionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Doctor holds the dependencies shared by all checks.
type Doctor struct {
	Runner   command.Runner
	Out      io.Writer
	problems int
}

// New returns a Doctor printing to w.
func New(runner command.Runner, w io.Writer) *Doctor {
	return &Doctor{Runner: runner, Out: w}
}

// Problems returns the number of MISS/FAIL findings so far.
func (d *Doctor) Problems() int { return d.problems }

func (d *Doctor) ok(format string, args ...any) {
	fmt.Fprintf(d.Out, "  [ OK ] "+format+"\n", args...)
}

func (d *Doctor) warn(format string, args ...any) {
	fmt.Fprintf(d.Out, "  [WARN] "+format+"\n", args...)
}

func (d *Doctor) miss(format string, args ...any) {
	d.problems++
	fmt.Fprintf(d.Out, "  [MISS] "+format+"\n", args...)
}

func (d *Doctor) fail(format string, args ...any) {
	d.problems++
	fmt.Fprintf(d.Out, "  [FAIL] "+format+"\n", args...)
}

// CheckSource verifies the editor's user directory and the settings files in it.
func (d *Doctor) CheckSource(resolve func() (string, error), files []string) {
	fmt.Fprintln(d.Out, "Source check:")

	dir, err := resolve()
	if err != nil {
		d.fail("%v", err)
		return
	}
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		d.miss("%s does not exist", dir)
		return
	}
	d.ok("%s exists", dir)

	for _, name := range files {
		if _, statErr := os.Stat(filepath.Join(dir, name)); statErr != nil {
			d.warn("%s not found (it will be skipped)", name)
			continue
		}
		d.ok("%s found", name)
	}
}

// CheckEditorCLI verifies that the editor CLI can list extensions.
func (d *Doctor) CheckEditorCLI(ctx context.Context, cli string) {
	fmt.Fprintln(d.Out, "Editor CLI check:")

	out, err := d.Runner.Run(ctx, cli, "--version")
	switch {
	case errors.Is(err, command.ErrNotFound):
		d.miss("%s not found in PATH (extensions will not be recorded)", cli)
	case err != nil:
		d.fail("%s: %v", cli, err)
	case !out.Success():
		d.fail("%s --version exited with status %d", cli, out.ExitCode)
	default:
		d.ok("%s %s", cli, firstLine(out.Stdout))
	}
}

// CheckGit verifies that git is installed and recent enough.
func (d *Doctor) CheckGit(ctx context.Context) {
	fmt.Fprintln(d.Out, "Git check:")

	out, err := d.Runner.Run(ctx, "git", "--version")
	if err != nil {
		if errors.Is(err, command.ErrNotFound) {
			d.miss("git not found in PATH (auto-commit will fail)")
			return
		}
		d.fail("git: %v", err)
		return
	}
	if !out.Success() {
		d.fail("git --version exited with status %d", out.ExitCode)
		return
	}

	v, err := ParseGitVersion(out.Stdout)
	if err != nil {
		d.warn("could not parse %q: %v", firstLine(out.Stdout), err)
		return
	}
	minimum := semver.MustParse(MinGitVersion)
	if v.LessThan(minimum) {
		d.fail("git %s is older than %s", v, minimum)
		return
	}
	d.ok("git %s", v)
}

// CheckRepo verifies that repoDir is a git work tree with the push remote configured.
func (d *Doctor) CheckRepo(ctx context.Context, repoDir, remote string) {
	fmt.Fprintln(d.Out, "Repository check:")

	out, err := d.Runner.Run(ctx, "git", "-C", repoDir, "rev-parse", "--is-inside-work-tree")
	if err != nil || !out.Success() || strings.TrimSpace(out.Stdout) != "true" {
		d.fail("%s is not a git work tree", repoDir)
		return
	}
	d.ok("%s is a git work tree", repoDir)

	out, err = d.Runner.Run(ctx, "git", "-C", repoDir, "remote", "get-url", remote)
	if err != nil || !out.Success() {
		d.miss("remote %q is not configured", remote)
		return
	}
	d.ok("remote %s → %s", remote, firstLine(out.Stdout))
}

// CheckDest reports the state of the dotfiles directory. A missing
// directory is fine: the first sync creates it.
func (d *Doctor) CheckDest(destDir string) {
	fmt.Fprintln(d.Out, "Destination check:")

	if _, err := os.Stat(destDir); err != nil {
		d.warn("%s does not exist yet (created on first sync)", destDir)
		return
	}
	d.ok("%s exists", destDir)

	if exts, err := dotfiles.ReadExtensions(filepath.Join(destDir, dotfiles.ExtensionsFile)); err == nil {
		d.ok("%s lists %d extensions", dotfiles.ExtensionsFile, len(exts))
	}
}

// ParseGitVersion extracts the version from `git --version` output such as
// "git version 2.39.3 (Apple Git-145)" or "git version 2.42.0.windows.2".
func ParseGitVersion(output string) (*semver.Version, error) {
	m := gitVersionRe.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(m[1] + "." + m[2] + "." + patch)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
