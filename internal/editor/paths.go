package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dotfiles-kit/cursor-sync/internal/branding"
)

// UserSubdir is the directory under the vendor folder that holds settings.json.
const UserSubdir = "User"

// AppDataEnv is required on Windows to locate the roaming profile.
const AppDataEnv = "APPDATA"

var (
	// ErrUnsupportedOS is returned for operating systems without a known settings location.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrMissingEnv is returned when a required environment variable is not set.
	ErrMissingEnv = errors.New("required environment variable not set")
)

// ResolveUserDir maps an operating system name (as in runtime.GOOS) to the
// editor's per-user settings directory.
//
//	darwin:  ~/Library/Application Support/<Editor>/User
//	windows: %APPDATA%\<Editor>\User
//	linux:   ~/.config/<Editor>/User
func ResolveUserDir(goos string, lookupEnv func(string) (string, bool), homeDir func() (string, error)) (string, error) {
	vendor := branding.EditorName()

	switch goos {
	case "darwin":
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", vendor, UserSubdir), nil
	case "windows":
		appData, ok := lookupEnv(AppDataEnv)
		if !ok || appData == "" {
			return "", fmt.Errorf("%s: %w", AppDataEnv, ErrMissingEnv)
		}
		return filepath.Join(appData, vendor, UserSubdir), nil
	case "linux":
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, ".config", vendor, UserSubdir), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// UserDir returns the settings directory for the running system.
// It checks the CURSOR_SYNC_USER_DIR environment variable first,
// then falls back to the per-OS location.
func UserDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("USER_DIR")); v != "" {
		return v, nil
	}
	return ResolveUserDir(runtime.GOOS, os.LookupEnv, os.UserHomeDir)
}
