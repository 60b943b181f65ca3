// Package dotfiles writes editor files into the dotfiles directory. Every
// overwrite is preceded by a single-level backup next to the original
// (settings.json → settings.json.backup), and the extension list is stored in
// the UTF-16LE text format the editor itself produces.
package dotfiles
