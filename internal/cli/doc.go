// Package cli defines the Cobra command tree for cursor-sync. The root
// command performs the sync itself; the other files each register one
// subcommand (config, doctor, status, version). Commands only handle flags
// and output and delegate the work to the internal packages.
package cli
