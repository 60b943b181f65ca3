// Package syncer runs one settings sync: resolve the editor's user
// directory, mirror the settings files and extension list into the dotfiles
// directory, summarize, and publish through git when something changed.
//
// Only path resolution and directory setup are fatal. Every later step that
// fails is reported and skipped, and the run still completes.
package syncer
