package platform

import (
	"os"
	"runtime"
)

// Chmod applies mode to path. Windows has no Unix permission bits, so the
// call is skipped there and copied files keep whatever ACLs they inherit.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
