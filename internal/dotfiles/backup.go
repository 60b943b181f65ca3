package dotfiles

import (
	"fmt"
	"os"

	"github.com/dotfiles-kit/cursor-sync/internal/platform"
)

// BackupSuffix is appended to a file name to form its backup's name.
const BackupSuffix = ".backup"

// BackupPath returns the backup location for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Backup copies path to its backup location, preserving mode and
// modification time, and returns the backup's path. A missing path is not an
// error: it returns "" and writes nothing. An existing backup is replaced.
func Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	backup := BackupPath(path)
	if err := platform.CopyFile(path, backup); err != nil {
		return "", fmt.Errorf("backing up %s: %w", path, err)
	}
	return backup, nil
}
