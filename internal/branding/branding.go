// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks rename the tool or point it at another
// VS Code derivative by editing that file only.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	EditorName  string `yaml:"editor_name"`
	EditorCLI   string `yaml:"editor_cli"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "cursor-sync",
			DisplayName: "Cursor Sync",
			Description: "Sync Cursor editor settings into a dotfiles repository",
			HomeDir:     ".cursor-sync",
			EnvPrefix:   "CURSOR_SYNC",
			EditorName:  "Cursor",
			EditorCLI:   "cursor",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "cursor-sync").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".cursor-sync").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CURSOR_SYNC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EditorName is the vendor directory name of the synced editor, used both in
// the per-user settings path and in commit messages.
func EditorName() string { load(); return defaults.EditorName }

// EditorCLI is the default command used to list installed extensions.
func EditorCLI() string { load(); return defaults.EditorCLI }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("user_dir") → "CURSOR_SYNC_USER_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
