package platform

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src over dst byte-for-byte and carries over the source's
// permission bits and modification time. dst is created or truncated.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return PreserveMetadata(info, dst)
}

// PreserveMetadata applies the mode and timestamps recorded in info to path.
func PreserveMetadata(info os.FileInfo, path string) error {
	if err := Chmod(path, info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	// Access time is not portable across platforms; use mtime for both.
	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("setting timestamps on %s: %w", path, err)
	}
	return nil
}
