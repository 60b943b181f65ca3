package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotfiles-kit/cursor-sync/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyAutoCommit = "auto_commit"
	KeyRepoDir    = "repo_dir"
	KeyDestSubdir = "dest_subdir"
	KeyEditorCLI  = "editor_cli"
	KeyGitRemote  = "git_remote"
	KeyGitBranch  = "git_branch"
)

// Keys lists every configuration key understood by the CLI.
var Keys = []string{KeyAutoCommit, KeyRepoDir, KeyDestSubdir, KeyEditorCLI, KeyGitRemote, KeyGitBranch}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Default values for keys that are not set in the file or environment.
const (
	DefaultDestSubdir = "cursor"
	DefaultGitRemote  = "origin"
	DefaultGitBranch  = "main"
)

// Settings is the typed view of the configuration consumed by the sync run.
type Settings struct {
	AutoCommit bool
	RepoDir    string
	DestSubdir string
	EditorCLI  string
	GitRemote  string
	GitBranch  string
}

// DestDir returns the directory the settings files are copied into.
func (s Settings) DestDir() string {
	return filepath.Join(s.RepoDir, s.DestSubdir)
}

// Dir returns the path to the config directory (~/.cursor-sync/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cursor-sync/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyAutoCommit, true)
	viper.SetDefault(KeyDestSubdir, DefaultDestSubdir)
	viper.SetDefault(KeyEditorCLI, branding.EditorCLI())
	viper.SetDefault(KeyGitRemote, DefaultGitRemote)
	viper.SetDefault(KeyGitBranch, DefaultGitBranch)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the loaded settings. An unset repo_dir falls back to the
// current working directory.
func Current() (Settings, error) {
	s := Settings{
		AutoCommit: viper.GetBool(KeyAutoCommit),
		RepoDir:    viper.GetString(KeyRepoDir),
		DestSubdir: viper.GetString(KeyDestSubdir),
		EditorCLI:  viper.GetString(KeyEditorCLI),
		GitRemote:  viper.GetString(KeyGitRemote),
		GitBranch:  viper.GetString(KeyGitBranch),
	}
	if s.RepoDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return s, fmt.Errorf("resolving working directory: %w", err)
		}
		s.RepoDir = wd
	}
	abs, err := filepath.Abs(s.RepoDir)
	if err != nil {
		return s, fmt.Errorf("resolving repo dir %s: %w", s.RepoDir, err)
	}
	s.RepoDir = abs
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
