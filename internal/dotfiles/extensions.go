package dotfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ExtensionsFile holds the installed-extension list in the dotfiles directory.
const ExtensionsFile = "extensions.txt"

// utf16le matches the encoding the editor uses for its own extension
// exports: little-endian, no byte order mark.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// WriteResult describes what WriteExtensions did.
type WriteResult struct {
	Path       string
	BackupPath string
	Count      int
}

// WriteExtensions backs up dstDir/extensions.txt and replaces it with exts
// joined by "\n" and encoded as UTF-16LE. No trailing newline is written.
func WriteExtensions(exts []string, dstDir string) (*WriteResult, error) {
	res := &WriteResult{
		Path:  filepath.Join(dstDir, ExtensionsFile),
		Count: len(exts),
	}

	backup, err := Backup(res.Path)
	if err != nil {
		return res, err
	}
	res.BackupPath = backup

	encoded, err := utf16le.NewEncoder().String(strings.Join(exts, "\n"))
	if err != nil {
		return res, fmt.Errorf("encoding %s: %w", ExtensionsFile, err)
	}
	if err := os.WriteFile(res.Path, []byte(encoded), 0644); err != nil {
		return res, fmt.Errorf("writing %s: %w", res.Path, err)
	}
	return res, nil
}

// ReadExtensions decodes an extensions file written by WriteExtensions.
func ReadExtensions(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoded, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	var exts []string
	for _, line := range strings.Split(string(decoded), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			exts = append(exts, line)
		}
	}
	return exts, nil
}
