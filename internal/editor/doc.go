// Package editor knows where the editor keeps its per-user settings on each
// supported operating system and how to ask its CLI for the list of
// installed extensions.
package editor
