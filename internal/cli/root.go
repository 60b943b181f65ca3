package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dotfiles-kit/cursor-sync/internal/branding"
	"github.com/dotfiles-kit/cursor-sync/internal/command"
	"github.com/dotfiles-kit/cursor-sync/internal/config"
	"github.com/dotfiles-kit/cursor-sync/internal/syncer"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var noCommit bool

// newRunner builds the process runner for a command; tests replace it.
var newRunner = func() command.Runner { return &command.ExecRunner{} }

func init() {
	rootCmd.Flags().BoolVar(&noCommit, "no-commit", false, "Copy files without committing and pushing")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies ` + branding.EditorName() + `'s settings.json, keybindings.json and the
list of installed extensions into a dotfiles repository, keeping a .backup of
every file it replaces, then commits and pushes the result.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), cmd.OutOrStdout())
	},
}

func runSync(ctx context.Context, w io.Writer) error {
	settings, err := config.Current()
	if err != nil {
		return err
	}
	autoCommit := settings.AutoCommit && !noCommit
	if !autoCommit {
		fmt.Fprintln(w, "ℹ️  Running without auto-commit")
	}

	s := syncer.New(syncer.Options{
		RepoDir:    settings.RepoDir,
		DestDir:    settings.DestDir(),
		EditorCLI:  settings.EditorCLI,
		GitRemote:  settings.GitRemote,
		GitBranch:  settings.GitBranch,
		AutoCommit: autoCommit,
	}, newRunner(), w)

	_, err = s.Run(ctx)
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(context.Background())
}
