package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotfiles-kit/cursor-sync/internal/command"
	"github.com/dotfiles-kit/cursor-sync/internal/syncer"
	"github.com/dotfiles-kit/cursor-sync/internal/testutil"
	"github.com/spf13/viper"
)

// cliEnv isolates HOME, the editor user dir and the dotfiles repo.
type cliEnv struct {
	UserDir string
	RepoDir string
	Runner  *testutil.FakeRunner
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	env := &cliEnv{
		UserDir: t.TempDir(),
		RepoDir: t.TempDir(),
		Runner:  testutil.NewFakeRunner(),
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("CURSOR_SYNC_USER_DIR", env.UserDir)
	t.Setenv("CURSOR_SYNC_REPO_DIR", env.RepoDir)

	for name, content := range map[string]string{
		"settings.json":    `{"files.autoSave": "afterDelay"}`,
		"keybindings.json": `[]`,
	} {
		if err := os.WriteFile(filepath.Join(env.UserDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	env.Runner.On("cursor --list-extensions", &command.Output{Stdout: "eamodio.gitlens\n"}, nil)

	prev := newRunner
	newRunner = func() command.Runner { return env.Runner }
	t.Cleanup(func() {
		newRunner = prev
		noCommit = false
	})
	return env
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootSyncsAndPublishes(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	for _, name := range []string{"settings.json", "keybindings.json", "extensions.txt"} {
		if _, err := os.Stat(filepath.Join(env.RepoDir, "cursor", name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if got := len(env.Runner.CallsTo("git")); got != 3 {
		t.Errorf("expected 3 git calls, got %d", got)
	}
	if !strings.Contains(out, "Successfully updated 3 files:") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestRootNoCommitFlag(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := execute(t, "--no-commit")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(env.Runner.CallsTo("git")) != 0 {
		t.Error("git should not run with --no-commit")
	}
	if !strings.Contains(out, "Running without auto-commit") {
		t.Errorf("output missing notice:\n%s", out)
	}
}

func TestRootAutoCommitDisabledInConfig(t *testing.T) {
	env := setupCLIEnv(t)
	t.Setenv("CURSOR_SYNC_AUTO_COMMIT", "false")

	if _, err := execute(t); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(env.Runner.CallsTo("git")) != 0 {
		t.Error("git should not run when auto_commit is false")
	}
}

func TestRootMissingSourceDirFails(t *testing.T) {
	setupCLIEnv(t)
	t.Setenv("CURSOR_SYNC_USER_DIR", filepath.Join(t.TempDir(), "missing"))

	_, err := execute(t, "--no-commit")
	if !errors.Is(err, syncer.ErrSourceMissing) {
		t.Fatalf("expected ErrSourceMissing, got %v", err)
	}
}

func TestRootPushFailureStillSucceeds(t *testing.T) {
	env := setupCLIEnv(t)
	env.Runner.On("git push origin main", &command.Output{ExitCode: 1, Stderr: "rejected"}, nil)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("push failure must not fail the command: %v", err)
	}
	if !strings.Contains(out, "Git operation failed") {
		t.Errorf("output missing warning:\n%s", out)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	setupCLIEnv(t)
	if _, err := execute(t, "extra"); err == nil {
		t.Error("expected error for unexpected argument")
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	setupCLIEnv(t)
	_, err := execute(t, "config", "set", "mirror_url", "x")
	if err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestConfigGetRejectsUnknownKey(t *testing.T) {
	setupCLIEnv(t)
	out, err := execute(t, "config", "get", "mirror_url")
	if err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("expected unknown key error, got %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestConfigSetAndGet(t *testing.T) {
	setupCLIEnv(t)
	if _, err := execute(t, "config", "set", "git_branch", "trunk"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	out, err := execute(t, "config", "get", "git_branch")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "trunk" {
		t.Errorf("config get = %q, want trunk", out)
	}
}

func TestStatusListsFiles(t *testing.T) {
	env := setupCLIEnv(t)
	if _, err := execute(t, "--no-commit"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	out, err := execute(t, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{env.UserDir, "settings.json", "1 extensions recorded"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorReportsProblems(t *testing.T) {
	env := setupCLIEnv(t)
	env.Runner.
		On("cursor --version", nil, command.ErrNotFound).
		On("git --version", &command.Output{Stdout: "git version 2.44.0\n"}, nil).
		On("git -C "+env.RepoDir+" rev-parse --is-inside-work-tree", &command.Output{Stdout: "true\n"}, nil).
		On("git -C "+env.RepoDir+" remote get-url origin", &command.Output{Stdout: "https://example.com/dotfiles.git\n"}, nil)

	out, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, "[MISS] cursor not found") {
		t.Errorf("doctor output missing CLI miss:\n%s", out)
	}
	if !strings.Contains(out, "1 problem(s) found") {
		t.Errorf("doctor output missing problem count:\n%s", out)
	}
}

func TestVersionShort(t *testing.T) {
	setupCLIEnv(t)
	buildVersion = "1.2.3"
	t.Cleanup(func() { buildVersion = ""; versionShort = false })

	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}
}
