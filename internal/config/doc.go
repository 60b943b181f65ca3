// Package config manages user-level settings stored at ~/.cursor-sync/config.yaml.
// Values can also be supplied through CURSOR_SYNC_* environment variables,
// such as the dotfiles repository location and whether a sync commits and
// pushes automatically.
package config
