package dotfiles

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotfiles-kit/cursor-sync/internal/platform"
)

// Settings file names copied verbatim from the editor's user directory.
const (
	SettingsFile    = "settings.json"
	KeybindingsFile = "keybindings.json"
)

// SettingsFiles lists the files synced by default, in copy order.
var SettingsFiles = []string{SettingsFile, KeybindingsFile}

// CopyResult describes what CopyWithBackup did.
type CopyResult struct {
	Name       string
	Source     string
	Dest       string
	BackupPath string // empty when there was no previous destination
	Copied     bool   // false when the source file does not exist
}

// CopyWithBackup copies srcDir/name over dstDir/name. A missing source is
// reported through Copied=false and leaves dstDir untouched. Otherwise any
// existing destination is backed up before it is overwritten.
func CopyWithBackup(srcDir, dstDir, name string) (*CopyResult, error) {
	res := &CopyResult{
		Name:   name,
		Source: filepath.Join(srcDir, name),
		Dest:   filepath.Join(dstDir, name),
	}

	if _, err := os.Stat(res.Source); err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return res, fmt.Errorf("checking source %s: %w", res.Source, err)
	}

	backup, err := Backup(res.Dest)
	if err != nil {
		return res, err
	}
	res.BackupPath = backup

	if err := platform.CopyFile(res.Source, res.Dest); err != nil {
		return res, fmt.Errorf("copying %s to %s: %w", res.Source, res.Dest, err)
	}
	res.Copied = true
	return res, nil
}
