package syncer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/dotfiles-kit/cursor-sync/internal/branding"
	"github.com/dotfiles-kit/cursor-sync/internal/command"
	"github.com/dotfiles-kit/cursor-sync/internal/dotfiles"
	"github.com/dotfiles-kit/cursor-sync/internal/editor"
	"github.com/dotfiles-kit/cursor-sync/internal/publish"
	"github.com/dotfiles-kit/cursor-sync/internal/report"
)

// ErrSourceMissing is returned when the editor's user directory does not exist.
var ErrSourceMissing = errors.New("editor user directory not found")

var printer = newPrinter()

// newPrinter returns an English printer that pluralizes the summary counts
// and groups digits ("1 file", "1,024 extensions").
func newPrinter() *message.Printer {
	cat := catalog.NewBuilder()
	_ = cat.Set(language.English, "%d files",
		plural.Selectf(1, "%d", plural.One, "%d file", plural.Other, "%d files"))
	_ = cat.Set(language.English, "%d extensions",
		plural.Selectf(1, "%d", plural.One, "%d extension", plural.Other, "%d extensions"))
	return message.NewPrinter(language.English, message.Catalog(cat))
}

// Options configures a sync run.
type Options struct {
	// RepoDir is the git work tree that is committed and pushed.
	RepoDir string

	// DestDir receives the copied files; created when absent.
	DestDir string

	// Files are copied from the user directory. Defaults to dotfiles.SettingsFiles.
	Files []string

	EditorCLI  string
	GitRemote  string
	GitBranch  string
	AutoCommit bool
}

// Summary is what a run changed.
type Summary struct {
	SourceDir     string
	DestDir       string
	Updated       []string
	Extensions    editor.ListResult
	Published     bool
	CommitMessage string
	PublishErr    error
}

// Syncer wires the sync steps together.
type Syncer struct {
	Opts   Options
	Runner command.Runner
	Out    *report.Reporter

	// ResolveUserDir locates the source directory. Defaults to editor.UserDir.
	ResolveUserDir func() (string, error)

	// Now stamps the commit message. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Syncer reporting to w.
func New(opts Options, runner command.Runner, w io.Writer) *Syncer {
	if len(opts.Files) == 0 {
		opts.Files = dotfiles.SettingsFiles
	}
	if opts.EditorCLI == "" {
		opts.EditorCLI = branding.EditorCLI()
	}
	return &Syncer{
		Opts:           opts,
		Runner:         runner,
		Out:            report.New(w),
		ResolveUserDir: editor.UserDir,
		Now:            time.Now,
	}
}

// Run performs the sync. A non-nil error means the run was aborted before
// any settings file was copied; step failures after that are only reported.
func (s *Syncer) Run(ctx context.Context) (*Summary, error) {
	s.Out.Title("🚀 %s Settings Extractor", branding.EditorName())

	if err := os.MkdirAll(s.Opts.DestDir, 0755); err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", s.Opts.DestDir, err)
	}

	srcDir, err := s.ResolveUserDir()
	if err != nil {
		return nil, fmt.Errorf("resolving %s user directory: %w", branding.EditorName(), err)
	}
	s.Out.Info("📍 %s user path: %s", branding.EditorName(), srcDir)

	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, srcDir)
	}
	s.Out.Info("📍 Destination: %s", s.Opts.DestDir)

	sum := &Summary{SourceDir: srcDir, DestDir: s.Opts.DestDir}

	s.Out.Section("📋 Copying configuration files...")
	for _, name := range s.Opts.Files {
		if s.copySettings(srcDir, name) {
			sum.Updated = append(sum.Updated, name)
		}
	}

	s.Out.Section("🧩 Extracting installed extensions...")
	sum.Extensions = s.listExtensions(ctx)
	if len(sum.Extensions.Extensions) > 0 && s.writeExtensions(sum.Extensions.Extensions) {
		sum.Updated = append(sum.Updated, dotfiles.ExtensionsFile)
	}

	s.Out.Info("")
	s.Out.Rule()
	if len(sum.Updated) == 0 {
		s.Out.Warn("No files were updated")
		s.Out.Info("\n✨ Done!")
		return sum, nil
	}

	s.Out.Success("Successfully updated %s:", printer.Sprintf("%d files", len(sum.Updated)))
	for _, name := range sum.Updated {
		s.Out.Item("%s", name)
	}

	if s.Opts.AutoCommit {
		s.publish(ctx, sum)
	}

	s.Out.Info("\n✨ Done!")
	return sum, nil
}

func (s *Syncer) copySettings(srcDir, name string) bool {
	res, err := dotfiles.CopyWithBackup(srcDir, s.Opts.DestDir, name)
	if err != nil {
		s.Out.Error("Error copying %s: %v", name, err)
		return false
	}
	if !res.Copied {
		s.Out.Warn("Source file not found: %s", res.Source)
		return false
	}
	if res.BackupPath != "" {
		s.Out.Info("📦 Backed up: %s → %s", name, filepath.Base(res.BackupPath))
	}
	s.Out.Success("Copied: %s", name)
	return true
}

func (s *Syncer) listExtensions(ctx context.Context) editor.ListResult {
	res := editor.NewLister(s.Runner, s.Opts.EditorCLI).List(ctx)
	switch res.Status {
	case editor.ListNotFound:
		s.Out.Error("%s CLI not found. Make sure %s is installed and %q is in PATH.",
			branding.EditorName(), branding.EditorName(), s.Opts.EditorCLI)
	case editor.ListFailed:
		if res.Err != nil {
			s.Out.Error("Error getting extensions: %v", res.Err)
		} else {
			s.Out.Error("Error getting extensions: %s %s exited with status %d: %s",
				s.Opts.EditorCLI, editor.ListExtensionsFlag, res.ExitCode, res.Stderr)
		}
	}
	return res
}

func (s *Syncer) writeExtensions(exts []string) bool {
	res, err := dotfiles.WriteExtensions(exts, s.Opts.DestDir)
	if res != nil && res.BackupPath != "" {
		s.Out.Info("📦 Backed up: %s → %s", dotfiles.ExtensionsFile, filepath.Base(res.BackupPath))
	}
	if err != nil {
		s.Out.Error("Error writing extensions file: %v", err)
		return false
	}
	s.Out.Success("Updated: %s (%s)", dotfiles.ExtensionsFile, printer.Sprintf("%d extensions", res.Count))
	return true
}

func (s *Syncer) publish(ctx context.Context, sum *Summary) {
	sum.CommitMessage = publish.CommitMessage(s.Now())
	s.Out.Info("\n🔄 Committing changes...")

	p := publish.New(s.Runner, s.Opts.GitRemote, s.Opts.GitBranch)
	if err := p.Publish(ctx, s.Opts.RepoDir, sum.CommitMessage); err != nil {
		sum.PublishErr = err
		s.Out.Warn("Git operation failed: %v", err)
		return
	}
	sum.Published = true
	s.Out.Success("Changes committed and pushed: %s", sum.CommitMessage)
}
