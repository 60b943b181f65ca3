// Package publish stages, commits and pushes the dotfiles repository with
// git. The git commands run from inside the repository: the process working
// directory is switched for the duration of the sequence and always restored.
package publish
