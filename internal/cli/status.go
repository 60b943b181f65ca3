package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dotfiles-kit/cursor-sync/internal/config"
	"github.com/dotfiles-kit/cursor-sync/internal/dotfiles"
	"github.com/dotfiles-kit/cursor-sync/internal/editor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show resolved paths and the state of synced files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}
		return printStatus(cmd.OutOrStdout(), settings)
	},
}

func printStatus(w io.Writer, settings config.Settings) error {
	userDir, err := editor.UserDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Source:      %s\n", userDir)
	fmt.Fprintf(w, "Destination: %s\n", settings.DestDir())
	fmt.Fprintf(w, "Repository:  %s (%s/%s)\n", settings.RepoDir, settings.GitRemote, settings.GitBranch)
	fmt.Fprintf(w, "Auto-commit: %t\n", settings.AutoCommit)
	fmt.Fprintln(w)

	names := append(append([]string(nil), dotfiles.SettingsFiles...), dotfiles.ExtensionsFile)
	for _, name := range names {
		dest := filepath.Join(settings.DestDir(), name)
		state := "missing"
		if info, statErr := os.Stat(dest); statErr == nil {
			state = "synced " + info.ModTime().Format("2006-01-02 15:04:05")
		}
		if _, statErr := os.Stat(dotfiles.BackupPath(dest)); statErr == nil {
			state += ", backup present"
		}
		fmt.Fprintf(w, "  %-18s %s\n", name, state)
	}

	if exts, err := dotfiles.ReadExtensions(filepath.Join(settings.DestDir(), dotfiles.ExtensionsFile)); err == nil {
		fmt.Fprintf(w, "\n%d extensions recorded\n", len(exts))
	}
	return nil
}
