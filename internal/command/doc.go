// Package command defines the Runner capability used for every external
// process the sync invokes (the editor CLI and git), with an os/exec backed
// implementation. Tests substitute fakes so no real editor or repository is
// touched.
package command
