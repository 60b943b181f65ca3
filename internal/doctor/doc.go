// Package doctor runs read-only health checks for a sync setup: the editor's
// settings directory, the editor CLI, git and the dotfiles repository. Each
// check prints one [ OK ]/[MISS]/[WARN]/[FAIL] line per finding.
package doctor
