package publish

import (
	"fmt"
	"os"
)

// InDir runs fn with the process working directory set to dir and switches
// back to the previous directory afterwards, also when fn fails or panics.
// A failure to switch back is returned if fn itself succeeded.
func InDir(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("reading working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("entering %s: %w", dir, err)
	}
	defer func() {
		if cdErr := os.Chdir(prev); cdErr != nil && err == nil {
			err = fmt.Errorf("restoring working directory %s: %w", prev, cdErr)
		}
	}()

	return fn()
}
