package cli

import (
	"fmt"

	"github.com/dotfiles-kit/cursor-sync/internal/config"
	"github.com/dotfiles-kit/cursor-sync/internal/doctor"
	"github.com/dotfiles-kit/cursor-sync/internal/dotfiles"
	"github.com/dotfiles-kit/cursor-sync/internal/editor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a sync can run",
	Long: `Run read-only checks on the editor settings directory, the editor CLI,
git and the dotfiles repository. Nothing is copied or committed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		d := doctor.New(newRunner(), w)
		d.CheckSource(editor.UserDir, dotfiles.SettingsFiles)
		d.CheckEditorCLI(cmd.Context(), settings.EditorCLI)
		d.CheckGit(cmd.Context())
		d.CheckRepo(cmd.Context(), settings.RepoDir, settings.GitRemote)
		d.CheckDest(settings.DestDir())

		fmt.Fprintln(w)
		if n := d.Problems(); n > 0 {
			fmt.Fprintf(w, "%d problem(s) found\n", n)
			return nil
		}
		fmt.Fprintln(w, "All checks passed")
		return nil
	},
}
